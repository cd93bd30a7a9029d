// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Longer than resolution: the DTS validates the whole file list before
// acknowledging.
const submitTimeout = 30 * time.Second

// Submit sends the built request to the DTS and returns the job ID it
// assigned. storageAuth, when non-empty, is attached as the
// Authorization-Storage header for the destination system.
func (s *TransferService) Submit(ctx context.Context, destinationType string, req *TransferRequest, storageAuth string) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", &SubmissionError{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	var headers map[string]string
	if storageAuth != "" {
		headers = map[string]string{"Authorization-Storage": storageAuth}
	}

	url := s.http.BuildURL("transfers", map[string]string{"dest": destinationType})
	body, _, err := s.http.Do(ctx, "POST", url, data, headers)
	if err != nil {
		return "", &SubmissionError{Err: err}
	}

	var resp struct {
		JobID string `json:"jobId"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &SubmissionError{Err: err}
	}
	if resp.JobID == "" {
		return "", &SubmissionError{Err: fmt.Errorf("failed to retrieve job ID from the transfer response: %s", body)}
	}
	return resp.JobID, nil
}

// Transfer runs the whole remote path: resolve the DOI, build the request,
// encode the destination credential and submit. The returned job ID is the
// terminal output of this SDK; tracking its state is out of scope.
func (s *TransferService) Transfer(ctx context.Context, spec TransferSpec) (*TransferResult, error) {
	elements, err := s.ResolveDOI(ctx, spec.DatasetDOI)
	if err != nil {
		return nil, err
	}

	req, err := BuildTransferRequest(elements, spec.Destination, spec.Overwrite)
	if err != nil {
		return nil, err
	}

	jobID, err := s.Submit(ctx, spec.DestinationType, req, spec.DestAuth.HeaderValue())
	if err != nil {
		return nil, err
	}

	return &TransferResult{Changed: true, JobID: jobID}, nil
}
