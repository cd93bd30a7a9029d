// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download

import "fmt"

// FetchError reports a failed directory creation or dataset download. A
// partially populated directory is left in place; cleanup is up to the
// caller.
type FetchError struct {
	Locator string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to download dataset %s: %v", e.Locator, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// OwnershipError reports an unknown owner or a chown failure. Entries
// already reassigned stay reassigned.
type OwnershipError struct {
	Owner string
	Err   error
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("failed to change owner to %s: %v", e.Owner, e.Err)
}

func (e *OwnershipError) Unwrap() error { return e.Err }
