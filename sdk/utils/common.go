// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

func getIniPath() string {
	iniPath, err := os.UserHomeDir()
	if err != nil {
		iniPath = "."
	}
	return iniPath + string(os.PathSeparator) + IniName
}

func TranslateFormat(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "yaml"
	default:
		return "json"
	}
}

func PrettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b) // fallback non indentato
	}
	return out.String()
}

// RenderOutput serializes a result for the caller, as indented JSON or as
// YAML when requested.
func RenderOutput(v any, format string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	if TranslateFormat(format) == "yaml" {
		y, err := yaml.JSONToYAML(b)
		if err != nil {
			return "", fmt.Errorf("json to yaml failed: %w", err)
		}
		return string(y), nil
	}
	return PrettyJSON(b), nil
}
