// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"context"
	"fmt"
	"strings"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/utils"
)

// S3Fetcher mirrors a dataset hosted under an s3://bucket/prefix locator.
type S3Fetcher struct {
	s3 *config.S3Client
}

func NewS3Fetcher(ctx context.Context, conf config.S3Config) (*S3Fetcher, error) {
	s3c, err := config.NewS3Client(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("S3 init failed: %w", err)
	}
	return &S3Fetcher{s3: s3c}, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, locator, path string) error {
	pp, err := utils.ParsePath(locator)
	if err != nil {
		return err
	}
	if pp.Scheme != "s3" {
		return fmt.Errorf("unsupported scheme %q for S3 fetch", pp.Scheme)
	}

	prefix := strings.TrimPrefix(pp.Path, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return utils.DownloadS3Prefix(ctx, f.s3, pp.Host, prefix, path)
}
