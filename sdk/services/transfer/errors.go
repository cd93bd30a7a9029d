// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import "fmt"

// ResolutionError reports a DOI that could not be resolved to a file
// listing (transport, status or parse failure).
type ResolutionError struct {
	DOI string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve DOI %s: %v", e.DOI, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// BuildError reports a malformed storage element that prevents building
// the transfer request.
type BuildError struct {
	Index int
	Name  string
	Err   error
}

func (e *BuildError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid storage element %q (index %d): %v", e.Name, e.Index, e.Err)
	}
	return fmt.Sprintf("invalid storage element at index %d: %v", e.Index, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// SubmissionError reports a transfer request the DTS did not accept, or
// accepted without returning a traceable job handle.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to create the transfer: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
