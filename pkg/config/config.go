// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional lfnorm settings file.
package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config holds settings that are not part of the command line contract
type Config struct {
	// Exclude lists doublestar globs matched against entry names in the target directory
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	// LogLevel is a zerolog level name; empty means warn
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" hcl:"log_level,optional"`

	location string
}

// 🏭 Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	for i, pattern := range cfg.Exclude {
		if strings.TrimSpace(pattern) == "" {
			return errors.Errorf("exclude %d: pattern is empty", i)
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude %d: invalid glob %q", i, pattern)
		}
	}

	if _, err := cfg.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the parsed log level.
func (cfg *Config) Level() (zerolog.Level, error) {
	if cfg.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Location is the file the config was loaded from, empty for Default.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	loc := cfg.location
	if loc == "" {
		loc = "<default>"
	}
	return fmt.Sprintf("%s exclude=[%s] log_level=%q", loc, strings.Join(cfg.Exclude, ","), cfg.LogLevel)
}
