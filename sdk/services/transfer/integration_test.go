// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer_test

import (
	"context"
	"os"
	"testing"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/services/transfer"
)

func TestResolveAgainstLiveDTS(t *testing.T) {
	endpoint := os.Getenv("DTS_ENDPOINT")
	token := os.Getenv("DTS_ACCESS_TOKEN")

	if endpoint == "" || token == "" {
		t.Skip("Missing env vars (DTS_ENDPOINT, DTS_ACCESS_TOKEN), skipping integration test.")
	}

	ctx := context.Background()
	svc, err := transfer.NewTransferService(ctx, config.Config{
		DTS: config.DTSConfig{Endpoint: endpoint, AccessToken: token},
	})
	if err != nil {
		t.Fatalf("failed to init sdk: %v", err)
	}

	elements, err := svc.ResolveDOI(ctx, "10.5281/zenodo.10157504")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(elements) == 0 {
		t.Fatal("expected at least one storage element")
	}
	for _, el := range elements {
		if el.Name == "" || el.DownloadURL == "" {
			t.Fatalf("incomplete element: %+v", el)
		}
	}
	t.Logf("OK, resolved %d elements", len(elements))
}
