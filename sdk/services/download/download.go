// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DatasetDirName derives a filesystem-safe directory name from a dataset
// locator. A URL is reduced to its path portion first, so both
// "10.5061/dryad.x3ffbg7m8" and "https://doi.org/10.5061/dryad.x3ffbg7m8"
// map to "10_5061_dryad_x3ffbg7m8".
func DatasetDirName(locator string) string {
	if u, err := url.Parse(locator); err == nil && u.Scheme != "" && u.Host != "" {
		locator = strings.TrimPrefix(u.Path, "/")
	}
	locator = strings.TrimPrefix(locator, "doi:")
	return strings.NewReplacer("/", "_", ".", "_").Replace(locator)
}

// Download materializes the dataset under OutputDir. If the target
// directory already exists the operation short-circuits with Changed=false
// and the fetcher is not invoked.
func (s *DownloadService) Download(ctx context.Context, req DownloadRequest) (*DownloadResult, error) {
	target := filepath.Join(req.OutputDir, DatasetDirName(req.DatasetURL))

	if _, err := os.Stat(target); err == nil {
		return &DownloadResult{
			Changed: false,
			Msg:     fmt.Sprintf("Dataset already exists at %s", target),
			Path:    target,
		}, nil
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, &FetchError{Locator: req.DatasetURL, Err: err}
	}

	if err := s.fetcher.Fetch(ctx, req.DatasetURL, target); err != nil {
		// no rollback: a partially populated directory is left as-is
		return nil, &FetchError{Locator: req.DatasetURL, Err: err}
	}

	if req.Owner != "" {
		if err := ChangeOwner(target, req.Owner); err != nil {
			return nil, err
		}
	}

	return &DownloadResult{
		Changed: true,
		Msg:     fmt.Sprintf("Dataset downloaded successfully to %s", req.OutputDir),
		Path:    target,
	}, nil
}
