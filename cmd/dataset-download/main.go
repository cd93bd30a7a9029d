// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// dataset-download materializes a dataset (DOI or s3:// URL) into a local
// directory, optionally reassigning its ownership.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/services/download"
	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/utils"
)

type failure struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}

func main() {
	var (
		datasetURL = flag.String("url", "", "dataset URL or DOI (required)")
		outputDir  = flag.String("output-dir", "", "directory where the dataset is saved")
		owner      = flag.String("owner", "", "user that will own the downloaded tree")
		envName    = flag.String("env", "", "configuration environment")
		output     = flag.String("o", "json", "output format: json or yaml")
	)
	flag.Parse()

	if err := utils.RegisterIniCfgWithViper(*envName); err != nil {
		log.Fatal(err)
	}

	if *outputDir == "" {
		*outputDir = viper.GetString(utils.DatasetOutputDir)
	}
	if *owner == "" {
		*owner = viper.GetString(utils.DatasetOwner)
	}

	if *datasetURL == "" || *outputDir == "" {
		fail(*output, "url and output-dir are required")
	}

	ctx := context.Background()
	fetcher, err := buildFetcher(ctx, *datasetURL)
	if err != nil {
		fail(*output, err.Error())
	}

	svc, err := download.NewDownloadService(fetcher)
	if err != nil {
		fail(*output, err.Error())
	}

	result, err := svc.Download(ctx, download.DownloadRequest{
		DatasetURL: *datasetURL,
		OutputDir:  *outputDir,
		Owner:      *owner,
	})
	if err != nil {
		fail(*output, err.Error())
	}

	render(*output, result)
}

// buildFetcher picks the fetch capability from the locator scheme: s3://
// datasets are mirrored directly, anything else goes through the DTS
// parser.
func buildFetcher(ctx context.Context, locator string) (download.Fetcher, error) {
	if strings.HasPrefix(locator, "s3://") {
		return download.NewS3Fetcher(ctx, config.S3Config{
			AccessKey:   viper.GetString(utils.AwsAccessKeyID),
			SecretKey:   viper.GetString(utils.AwsSecretAccessKey),
			AccessToken: viper.GetString(utils.AwsSessionToken),
			Region:      viper.GetString(utils.AwsRegion),
			EndpointURL: viper.GetString(utils.AwsEndpointURL),
		})
	}
	endpoint := viper.GetString(utils.DtsEndpoint)
	if endpoint == "" {
		endpoint = utils.DefaultDtsEndpoint
	}
	return download.NewDOIFetcher(ctx, config.Config{
		DTS: config.DTSConfig{
			Endpoint:    endpoint,
			AccessToken: viper.GetString(utils.DtsAccessToken),
		},
	})
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
