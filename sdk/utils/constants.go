// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".dataset.ini"
	IniSource          = "ini_source"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	DtsEndpoint    = "dts_endpoint"
	DtsAccessToken = "dts_access_token"

	Destination     = "destination"
	DestinationType = "destination_type"
	DestAuthType    = "dest_auth_type"
	DestAuthUser    = "dest_auth_user"
	DestAuthToken   = "dest_auth_token"
	Overwrite       = "overwrite"

	DatasetOutputDir = "dataset_output_dir"
	DatasetOwner     = "dataset_owner"

	AwsAccessKeyID     = "aws_access_key_id"
	AwsSecretAccessKey = "aws_secret_access_key"
	AwsSessionToken    = "aws_session_token"
	AwsRegion          = "aws_region"
	AwsEndpointURL     = "aws_endpoint_url"

	// Public EOSC Beyond DTS instance, overridable via DTS_ENDPOINT
	DefaultDtsEndpoint = "https://data-transfer.service.eosc-beyond.eu"
)
