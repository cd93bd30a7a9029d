// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"context"
	"errors"
)

// Fetcher materializes the dataset named by locator into path. The
// directory exists and is empty when Fetch is called.
type Fetcher interface {
	Fetch(ctx context.Context, locator, path string) error
}

type DownloadService struct {
	fetcher Fetcher
}

func NewDownloadService(fetcher Fetcher) (*DownloadService, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	return &DownloadService{fetcher: fetcher}, nil
}
