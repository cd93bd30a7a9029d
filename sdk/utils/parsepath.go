// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"net/url"
	"path"
)

// ParsedPath is a remote locator split into its parts. For s3:// paths
// Host is the bucket and Path the key or key prefix.
type ParsedPath struct {
	Scheme   string
	Host     string
	Path     string
	Filename string
}

func ParsePath(pathStr string) (*ParsedPath, error) {
	u, err := url.Parse(pathStr)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", pathStr, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("missing scheme in path %q", pathStr)
	}
	return &ParsedPath{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     u.Path,
		Filename: path.Base(u.Path),
	}, nil
}
