package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const rcFileName = ".picolrc.yml"

// rcFile holds optional per-user defaults for the CLI. A missing default rc
// file is fine; an unreadable or malformed one is an error.
type rcFile struct {
	Prompt         string `yaml:"prompt"`
	RecursionLimit int    `yaml:"recursion_limit"`
}

func loadRCFile(path string) (rcFile, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return rcFile{}, nil
		}
		path = filepath.Join(home, rcFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return rcFile{}, nil
		}
		return rcFile{}, fmt.Errorf("read rc file: %w", err)
	}

	var rc rcFile
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return rcFile{}, fmt.Errorf("parse rc file %s: %w", path, err)
	}
	if rc.RecursionLimit < 0 {
		return rcFile{}, fmt.Errorf("rc file %s: recursion_limit cannot be negative", path)
	}
	return rc, nil
}
