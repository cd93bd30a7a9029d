// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// One attempt, bounded wait; retries are left to the invoking automation.
const resolveTimeout = 10 * time.Second

// ResolveDOI translates a dataset DOI into the ordered list of its
// downloadable files via the DTS parser endpoint. A response without an
// "elements" field yields an empty list.
func (s *TransferService) ResolveDOI(ctx context.Context, doi string) ([]StorageElement, error) {
	if doi == "" {
		return nil, &ResolutionError{DOI: doi, Err: errors.New("empty DOI")}
	}

	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	url := s.http.BuildURL("parser", map[string]string{"doi": doi})
	body, _, err := s.http.Do(ctx, "GET", url, nil, nil)
	if err != nil {
		return nil, &ResolutionError{DOI: doi, Err: err}
	}

	var parsed parserResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ResolutionError{DOI: doi, Err: err}
	}
	return parsed.Elements, nil
}
