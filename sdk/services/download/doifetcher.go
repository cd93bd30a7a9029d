// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/services/transfer"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/utils"
)

// DOIFetcher resolves a DOI through the DTS parser and downloads every
// element of the dataset over HTTP.
type DOIFetcher struct {
	svc *transfer.TransferService
}

func NewDOIFetcher(ctx context.Context, conf config.Config) (*DOIFetcher, error) {
	svc, err := transfer.NewTransferService(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &DOIFetcher{svc: svc}, nil
}

func (f *DOIFetcher) Fetch(ctx context.Context, locator, path string) error {
	doi := strings.TrimPrefix(locator, "doi:")

	elements, err := f.svc.ResolveDOI(ctx, doi)
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		return fmt.Errorf("dataset %s has no downloadable files", locator)
	}

	for _, el := range elements {
		target := filepath.Join(path, el.Name)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create local directory: %w", err)
		}
		if err := utils.DownloadHTTPFile(el.DownloadURL, target); err != nil {
			return fmt.Errorf("failed to download %s: %w", el.Name, err)
		}
	}
	return nil
}
