// Package common holds small helpers shared by the CLI actions.
package common

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NewLogger builds the JSON logger the actions share. quiet raises the level
// so only errors reach stderr.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// MarshalOutput renders a report value as YAML or indented JSON. Unknown
// formats fall back to JSON.
func MarshalOutput(v interface{}, format string) ([]byte, error) {
	if strings.ToLower(format) == "yaml" {
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal output: %w", err)
		}
		return out, nil
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return out, nil
}
