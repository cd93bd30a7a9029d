// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

// StorageElement is one downloadable file of a resolved dataset, as
// returned by the DTS parser endpoint.
type StorageElement struct {
	Name        string `json:"name"`
	DownloadURL string `json:"downloadUrl"`
	Checksum    string `json:"checksum,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

type parserResponse struct {
	Elements []StorageElement `json:"elements"`
}

// -------- Transfer request wire format --------

type TransferFile struct {
	Sources      []string `json:"sources"`
	Destinations []string `json:"destinations"`
}

type TransferParams struct {
	VerifyChecksum bool `json:"verifyChecksum"`
	Overwrite      bool `json:"overwrite"`
	Retry          int  `json:"retry"`
	Priority       int  `json:"priority"`
}

type TransferRequest struct {
	Files  []TransferFile `json:"files"`
	Params TransferParams `json:"params"`
}

// DestinationAuth carries the credential for the destination storage
// system. TokenType selects the encoding: "password" (the default when
// empty) combines User and Token, "token"/"bearer" use Token verbatim.
type DestinationAuth struct {
	TokenType string `json:"token_type"`
	User      string `json:"user"`
	Token     string `json:"token"`
}

// TransferSpec is the full input of the remote transfer path.
type TransferSpec struct {
	DatasetDOI      string
	Destination     string
	DestinationType string
	DestAuth        *DestinationAuth
	Overwrite       bool
}

// TransferResult is the caller-visible outcome: an accepted request with
// the job handle assigned by the DTS.
type TransferResult struct {
	Changed bool   `json:"changed"`
	JobID   string `json:"jobid"`
}
