package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benjivesterby/go-fwint/rsasmall"
)

// LoadKey reads and parses a JSON key file.
func LoadKey(path string) (*rsasmall.KeyPair, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	var kp rsasmall.KeyPair
	if err := json.Unmarshal(data, &kp); err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}
	return &kp, nil
}

// SaveKey writes a key pair as JSON, readable only by its owner.
func SaveKey(path string, kp *rsasmall.KeyPair) error {
	data, err := json.MarshalIndent(kp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode key: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}
