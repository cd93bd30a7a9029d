// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// ChangeOwner reassigns ownership of path and everything under it to the
// given owner, a numeric uid or a user name. The group is left untouched.
// Best-effort bulk operation: on failure, entries already reassigned are
// not reverted.
func ChangeOwner(path, owner string) error {
	uid, err := resolveUID(owner)
	if err != nil {
		return &OwnershipError{Owner: owner, Err: err}
	}

	err = filepath.WalkDir(path, func(p string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return os.Chown(p, uid, -1)
	})
	if err != nil {
		return &OwnershipError{Owner: owner, Err: err}
	}
	return nil
}

func resolveUID(owner string) (int, error) {
	if uid, err := strconv.Atoi(owner); err == nil {
		return uid, nil
	}
	u, err := user.Lookup(owner)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(u.Uid)
}
