// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

type ServiceHTTP interface {
	BuildURL(resource string, params map[string]string) string
	Do(ctx context.Context, method, url string, data []byte, headers map[string]string) ([]byte, int, error)
}

type httpCore struct {
	httpClient *http.Client
	dtsConfig  DTSConfig
}

func NewHTTPCore(httpClient *http.Client, dtsConfig DTSConfig) ServiceHTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpCore{httpClient: httpClient, dtsConfig: dtsConfig}
}

func (httpCore *httpCore) BuildURL(resource string, params map[string]string) string {
	base := httpCore.dtsConfig.Endpoint + "/" + resource
	first := true
	for k, v := range params {
		if v == "" {
			continue
		}
		if first {
			base += "?"
			first = false
		} else {
			base += "&"
		}
		base += fmt.Sprintf("%s=%s", k, v)
	}
	return base
}

func (httpCore *httpCore) Do(ctx context.Context, method, url string, data []byte, headers map[string]string) ([]byte, int, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	// If access token is set, add Authorization header
	if tok := httpCore.dtsConfig.AccessToken; tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		var m map[string]any
		if json.Unmarshal(b, &m) == nil {
			if msg, ok := m["message"].(string); ok && msg != "" {
				return b, resp.StatusCode, fmt.Errorf("DTS responded with: %s - %s", resp.Status, msg)
			}
		}
		return b, resp.StatusCode, fmt.Errorf("DTS responded with: %s", resp.Status)
	}
	return b, resp.StatusCode, rerr
}
