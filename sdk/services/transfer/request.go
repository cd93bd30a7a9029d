// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"errors"
	"strings"
)

// BuildTransferRequest maps every resolved element, in order, to one
// source/destination pair under the given destination base path. It is
// pure: no I/O, same inputs same request. An empty element list builds an
// empty (but valid) request.
func BuildTransferRequest(elements []StorageElement, destination string, overwrite bool) (*TransferRequest, error) {
	// exactly one trailing separator, however many the caller supplied
	destination = strings.TrimRight(destination, "/") + "/"

	files := make([]TransferFile, 0, len(elements))
	for i, el := range elements {
		if el.Name == "" {
			return nil, &BuildError{Index: i, Err: errors.New("missing name")}
		}
		if el.DownloadURL == "" {
			return nil, &BuildError{Index: i, Name: el.Name, Err: errors.New("missing download URL")}
		}
		files = append(files, TransferFile{
			Sources:      []string{el.DownloadURL},
			Destinations: []string{destination + el.Name},
		})
	}

	return &TransferRequest{
		Files: files,
		Params: TransferParams{
			VerifyChecksum: true,
			Overwrite:      overwrite,
			Retry:          0,
			Priority:       0,
		},
	}, nil
}
