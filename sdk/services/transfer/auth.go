// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import "encoding/base64"

// HeaderValue encodes the destination credential into the value of the
// Authorization-Storage header. A nil receiver or an unrecognized token
// type produce an empty string, meaning no header is attached; the
// permissive fallback for unknown types is intentional and must not be
// turned into an error without coordinating with the DTS side.
//
// The raw credential is never logged or persisted.
func (a *DestinationAuth) HeaderValue() string {
	if a == nil {
		return ""
	}
	switch a.TokenType {
	case "", "password":
		return base64.StdEncoding.EncodeToString([]byte(a.User + ":" + a.Token))
	case "token", "bearer":
		return a.Token
	default:
		return ""
	}
}
