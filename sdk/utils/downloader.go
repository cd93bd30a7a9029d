// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
)

/* ------------ logging helpers (stderr) ------------ */

func infof(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", a...)
}
func warnf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", a...)
}

/* ------------ HTTP ------------ */

// DownloadHTTPFile fetches url into destination, rendering a single-line
// progress on stderr.
func DownloadHTTPFile(url string, destination string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer func(Body io.ReadCloser) { _ = Body.Close() }(resp.Body)

	if resp.StatusCode != 200 {
		return fmt.Errorf("server responded with: %s", resp.Status)
	}

	out, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer out.Close()

	gp := &globalProgress{}
	if resp.ContentLength > 0 {
		gp.totalKnown = true
		gp.totalBytes = resp.ContentLength
	}

	buf := make([]byte, 1024*128) // 128KB
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
			gp.add(int64(n))
			gp.render(false)
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return readErr
		}
	}
	gp.done()
	return nil
}

/* ------------ S3: mirror a prefix locally ------------ */

// DownloadS3Prefix copies every object under bucket/prefix into localBase,
// preserving the relative layout.
func DownloadS3Prefix(ctx context.Context, s3Client *config.S3Client, bucket, prefix, localBase string) error {
	gp := &globalProgress{}

	// totals only serve the global percentage; proceed without on failure
	all, err := s3Client.ListFilesAll(ctx, bucket, prefix)
	if err != nil {
		warnf("Listing failed, proceeding without totals: %v", err)
	} else {
		var totalBytes int64
		for _, f := range all {
			totalBytes += f.Size
		}
		gp.totalKnown = len(all) > 0 && totalBytes > 0
		gp.totalBytes = totalBytes
	}
	infof("Preparing download s3://%s/%s -> %s", bucket, prefix, localBase)

	err = s3Client.WalkPrefix(ctx, bucket, prefix, 1000, func(obj s3types.Object) error {
		key := aws.ToString(obj.Key)
		relativePath := strings.TrimPrefix(key, prefix)
		targetPath := filepath.Join(localBase, relativePath)

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("failed to create local directory: %w", err)
		}
		if err := s3Client.DownloadFile(ctx, bucket, key, targetPath); err != nil {
			return fmt.Errorf("failed to download file: %w", err)
		}

		gp.add(aws.ToInt64(obj.Size))
		gp.render(false)
		return nil
	})
	if err != nil {
		return err
	}
	gp.done()
	return nil
}
