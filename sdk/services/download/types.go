// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package download

type DownloadRequest struct {
	// DatasetURL is the dataset locator, a DOI or a URL. Not validated
	// beyond presence.
	DatasetURL string
	// OutputDir is the directory under which the dataset directory is
	// created.
	OutputDir string
	// Owner, when set, is the user that will own the downloaded tree:
	// either a numeric uid or a name resolved through the system user
	// database.
	Owner string
}

type DownloadResult struct {
	Changed bool   `json:"changed"`
	Msg     string `json:"msg"`
	Path    string `json:"path,omitempty"`
}
