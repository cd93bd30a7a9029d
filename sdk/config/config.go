// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

// Config passed to the SDK services (no viper/INI here)
type Config struct {
	DTS DTSConfig
	S3  S3Config
}

// DTSConfig describes how to reach the Data Transfer Service.
type DTSConfig struct {
	// Endpoint is the DTS base URL, e.g. https://data-transfer.service.eosc-beyond.eu
	Endpoint string
	// AccessToken authenticates against the DTS itself. It is distinct from
	// any credential for the destination storage system.
	AccessToken string
}

type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
}
