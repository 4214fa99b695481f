package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"train-induction-ai/fleet"
)

// LoadProfile reads a YAML fleet profile layered over the built-in defaults.
// An empty path returns the defaults.
func LoadProfile(path string) (fleet.Profile, error) {
	profile := fleet.DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read fleet profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes YAML over the default profile and validates the result.
// Unknown keys are rejected.
func ParseProfile(data []byte) (fleet.Profile, error) {
	profile := fleet.DefaultProfile()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return profile, fmt.Errorf("failed to parse fleet profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return profile, err
	}
	return profile, nil
}
