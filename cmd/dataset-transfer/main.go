// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// dataset-transfer resolves a dataset DOI and submits a bulk transfer of
// its files to a storage endpoint through the Data Transfer Service,
// printing the job ID of the accepted request.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/services/transfer"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/utils"
)

type failure struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}

func main() {
	var (
		doi       = flag.String("doi", "", "dataset DOI to transfer (required)")
		dest      = flag.String("destination", "", "destination storage URL")
		destType  = flag.String("dest-type", "", "destination storage type, e.g. s3, dcache, storm")
		endpoint  = flag.String("endpoint", "", "DTS endpoint (default from config)")
		token     = flag.String("token", "", "DTS access token (default from config)")
		overwrite = flag.Bool("overwrite", false, "overwrite destination files")
		envName   = flag.String("env", "", "configuration environment")
		output    = flag.String("o", "json", "output format: json or yaml")
	)
	flag.Parse()

	if err := utils.RegisterIniCfgWithViper(*envName); err != nil {
		log.Fatal(err)
	}

	if *endpoint == "" {
		*endpoint = viper.GetString(utils.DtsEndpoint)
	}
	if *endpoint == "" {
		*endpoint = utils.DefaultDtsEndpoint
	}
	if *token == "" {
		*token = viper.GetString(utils.DtsAccessToken)
	}
	if *dest == "" {
		*dest = viper.GetString(utils.Destination)
	}
	if *destType == "" {
		*destType = viper.GetString(utils.DestinationType)
	}

	if *doi == "" || *dest == "" || *destType == "" {
		fail(*output, "doi, destination and dest-type are required")
	}

	var destAuth *transfer.DestinationAuth
	if u, t := viper.GetString(utils.DestAuthUser), viper.GetString(utils.DestAuthToken); u != "" || t != "" {
		destAuth = &transfer.DestinationAuth{
			TokenType: viper.GetString(utils.DestAuthType),
			User:      u,
			Token:     t,
		}
	}

	ctx := context.Background()
	svc, err := transfer.NewTransferService(ctx, config.Config{
		DTS: config.DTSConfig{Endpoint: *endpoint, AccessToken: *token},
	})
	if err != nil {
		fail(*output, err.Error())
	}

	result, err := svc.Transfer(ctx, transfer.TransferSpec{
		DatasetDOI:      *doi,
		Destination:     *dest,
		DestinationType: *destType,
		DestAuth:        destAuth,
		Overwrite:       *overwrite || viper.GetBool(utils.Overwrite),
	})
	if err != nil {
		fail(*output, err.Error())
	}

	render(*output, result)
}

func render(format string, v any) {
	out, err := utils.RenderOutput(v, format)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}

func fail(format, msg string) {
	out, err := utils.RenderOutput(failure{Failed: true, Msg: msg}, format)
	if err != nil {
		log.Fatal(msg)
	}
	fmt.Println(out)
	os.Exit(1)
}
