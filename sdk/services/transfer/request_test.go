// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/services/transfer"
)

func TestBuildTransferRequestNormalizesDestination(t *testing.T) {
	elements := []transfer.StorageElement{
		{Name: "data.csv", DownloadURL: "http://x/data.csv"},
	}

	for _, dest := range []string{
		"s3://bucket/path",
		"s3://bucket/path/",
		"s3://bucket/path//",
	} {
		req, err := transfer.BuildTransferRequest(elements, dest, false)
		if err != nil {
			t.Fatalf("build failed for %q: %v", dest, err)
		}
		got := req.Files[0].Destinations[0]
		if got != "s3://bucket/path/data.csv" {
			t.Fatalf("destination %q: got %q, want s3://bucket/path/data.csv", dest, got)
		}
	}
}

func TestBuildTransferRequestKeepsOrder(t *testing.T) {
	var elements []transfer.StorageElement
	for i := 0; i < 5; i++ {
		elements = append(elements, transfer.StorageElement{
			Name:        fmt.Sprintf("file-%d.dat", i),
			DownloadURL: fmt.Sprintf("http://x/file-%d.dat", i),
		})
	}

	req, err := transfer.BuildTransferRequest(elements, "https://dest/dir", false)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(req.Files) != len(elements) {
		t.Fatalf("got %d descriptors, want %d", len(req.Files), len(elements))
	}
	for i, f := range req.Files {
		if f.Sources[0] != elements[i].DownloadURL {
			t.Fatalf("descriptor %d: source %q does not match element %q", i, f.Sources[0], elements[i].DownloadURL)
		}
		if f.Destinations[0] != "https://dest/dir/"+elements[i].Name {
			t.Fatalf("descriptor %d: unexpected destination %q", i, f.Destinations[0])
		}
	}
}

func TestBuildTransferRequestParams(t *testing.T) {
	req, err := transfer.BuildTransferRequest(
		[]transfer.StorageElement{{Name: "data.csv", DownloadURL: "http://x/data.csv"}},
		"s3://bucket/path",
		true,
	)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	p := req.Params
	if !p.VerifyChecksum {
		t.Fatal("verifyChecksum must always be enabled")
	}
	if !p.Overwrite {
		t.Fatal("overwrite flag was not passed through")
	}
	if p.Retry != 0 || p.Priority != 0 {
		t.Fatalf("retry/priority must be 0, got %d/%d", p.Retry, p.Priority)
	}
}

func TestBuildTransferRequestEmptyElements(t *testing.T) {
	req, err := transfer.BuildTransferRequest(nil, "s3://bucket/path", false)
	if err != nil {
		t.Fatalf("empty resolution must not fail: %v", err)
	}
	if len(req.Files) != 0 {
		t.Fatalf("expected empty descriptor list, got %d", len(req.Files))
	}
}

func TestBuildTransferRequestMalformedElement(t *testing.T) {
	_, err := transfer.BuildTransferRequest(
		[]transfer.StorageElement{
			{Name: "ok.csv", DownloadURL: "http://x/ok.csv"},
			{DownloadURL: "http://x/anonymous"},
		},
		"s3://bucket/path",
		false,
	)
	var be *transfer.BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected BuildError, got %v", err)
	}
	if be.Index != 1 {
		t.Fatalf("expected offending index 1, got %d", be.Index)
	}

	_, err = transfer.BuildTransferRequest(
		[]transfer.StorageElement{{Name: "no-url.csv"}},
		"s3://bucket/path",
		false,
	)
	if !errors.As(err, &be) {
		t.Fatalf("expected BuildError for missing URL, got %v", err)
	}
	if be.Name != "no-url.csv" {
		t.Fatalf("expected error to name the element, got %q", be.Name)
	}
}
