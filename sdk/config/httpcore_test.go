// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scc-digitalhub/dataset-transfer-sdk/sdk/config"
)

func TestBuildURL(t *testing.T) {
	core := config.NewHTTPCore(nil, config.DTSConfig{Endpoint: "https://dts.example"})

	url := core.BuildURL("parser", map[string]string{"doi": "10.1/x"})
	if url != "https://dts.example/parser?doi=10.1/x" {
		t.Fatalf("unexpected url %q", url)
	}

	// empty params are skipped
	url = core.BuildURL("transfers", map[string]string{"dest": ""})
	if url != "https://dts.example/transfers" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestDoHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("unexpected Authorization %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("unexpected Accept %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected Content-Type %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Fatal("missing X-Request-Id")
		}
		if got := r.Header.Get("Authorization-Storage"); got != "cred" {
			t.Fatalf("unexpected Authorization-Storage %q", got)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	core := config.NewHTTPCore(nil, config.DTSConfig{Endpoint: server.URL, AccessToken: "tok"})
	body, status, err := core.Do(context.Background(), "POST", server.URL+"/transfers",
		[]byte(`{}`), map[string]string{"Authorization-Storage": "cred"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != 200 || string(body) != `{"ok":true}` {
		t.Fatalf("unexpected response %d %q", status, body)
	}
}

func TestDoErrorCarriesServiceMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"unsupported destination"}`))
	}))
	defer server.Close()

	core := config.NewHTTPCore(nil, config.DTSConfig{Endpoint: server.URL})
	_, status, err := core.Do(context.Background(), "GET", server.URL+"/parser", nil, nil)
	if err == nil {
		t.Fatal("expected error on 400")
	}
	if status != 400 {
		t.Fatalf("unexpected status %d", status)
	}
	if !strings.Contains(err.Error(), "unsupported destination") {
		t.Fatalf("error must carry the service message, got %v", err)
	}
}
