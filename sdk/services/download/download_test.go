// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/services/download"
)

type fakeFetcher struct {
	calls   int
	lastDst string
	err     error
}

func (f *fakeFetcher) Fetch(_ context.Context, _, path string) error {
	f.calls++
	f.lastDst = path
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(filepath.Join(path, "data.csv"), []byte("a,b\n"), 0o644)
}

func TestDatasetDirName(t *testing.T) {
	cases := []struct {
		locator string
		want    string
	}{
		{"10.5061/dryad.x3ffbg7m8", "10_5061_dryad_x3ffbg7m8"},
		{"doi:10.5281/zenodo.10157504", "10_5281_zenodo_10157504"},
		{"https://doi.org/10.5061/dryad.x3ffbg7m8", "10_5061_dryad_x3ffbg7m8"},
	}
	for _, c := range cases {
		if got := download.DatasetDirName(c.locator); got != c.want {
			t.Fatalf("DatasetDirName(%q) = %q, want %q", c.locator, got, c.want)
		}
	}
}

func TestDownload(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc, err := download.NewDownloadService(fetcher)
	if err != nil {
		t.Fatalf("failed to init service: %v", err)
	}

	outputDir := t.TempDir()
	result, err := svc.Download(context.Background(), download.DownloadRequest{
		DatasetURL: "10.5061/dryad.x3ffbg7m8",
		OutputDir:  outputDir,
	})
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}

	want := filepath.Join(outputDir, "10_5061_dryad_x3ffbg7m8")
	if !result.Changed {
		t.Fatal("expected changed=true on first download")
	}
	if result.Path != want {
		t.Fatalf("got path %q, want %q", result.Path, want)
	}
	if fetcher.calls != 1 || fetcher.lastDst != want {
		t.Fatalf("fetcher invoked %d times with %q", fetcher.calls, fetcher.lastDst)
	}
	if _, err := os.Stat(filepath.Join(want, "data.csv")); err != nil {
		t.Fatalf("dataset content missing: %v", err)
	}
}

func TestDownloadShortCircuitsOnExistingTarget(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc, _ := download.NewDownloadService(fetcher)

	outputDir := t.TempDir()
	target := filepath.Join(outputDir, "10_5061_dryad_x3ffbg7m8")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Download(context.Background(), download.DownloadRequest{
		DatasetURL: "10.5061/dryad.x3ffbg7m8",
		OutputDir:  outputDir,
	})
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}

	if result.Changed {
		t.Fatal("expected changed=false on pre-existing target")
	}
	if !strings.Contains(result.Msg, target) {
		t.Fatalf("message must name the existing path, got %q", result.Msg)
	}
	if fetcher.calls != 0 {
		t.Fatalf("fetcher must not be invoked, got %d calls", fetcher.calls)
	}
}

func TestDownloadFetchFailureKeepsPartialState(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection reset")}
	svc, _ := download.NewDownloadService(fetcher)

	outputDir := t.TempDir()
	_, err := svc.Download(context.Background(), download.DownloadRequest{
		DatasetURL: "10.5061/dryad.x3ffbg7m8",
		OutputDir:  outputDir,
	})

	var fe *download.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	// no rollback: the created directory stays
	if _, serr := os.Stat(filepath.Join(outputDir, "10_5061_dryad_x3ffbg7m8")); serr != nil {
		t.Fatalf("partially created directory must be left in place: %v", serr)
	}
}

func TestChangeOwnerNumeric(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// chown to the current uid is a no-op allowed without privileges
	if err := download.ChangeOwner(dir, strconv.Itoa(os.Getuid())); err != nil {
		t.Fatalf("chown to own uid failed: %v", err)
	}
}

func TestChangeOwnerUnknownUser(t *testing.T) {
	err := download.ChangeOwner(t.TempDir(), "no-such-user-xyz")
	var oe *download.OwnershipError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OwnershipError, got %v", err)
	}
}
