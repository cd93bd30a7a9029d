// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"errors"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
)

type TransferService struct {
	http config.ServiceHTTP
}

func NewTransferService(_ context.Context, conf config.Config) (*TransferService, error) {
	if conf.DTS.Endpoint == "" {
		return nil, errors.New("invalid DTS config")
	}
	return &TransferService{
		http: config.NewHTTPCore(nil, conf.DTS),
	}, nil
}
