// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads generator defaults from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the configuration file looked up when no explicit
// path is given. A missing file at this path is not an error.
const DefaultPath = "dcf77.toml"

// Config holds the generator defaults, overridable from the command
// line.
type Config struct {
	Output string `toml:"output"` // path of the generated WAV file

	Signal struct {
		CarrierFreq float64 `toml:"carrier-frequency"` // Hz
		SampleRate  float64 `toml:"sample-rate"`       // Hz
		BitDuration float64 `toml:"bit-duration"`      // seconds
	} `toml:"signal"`
}

// Default returns the built-in configuration: the DCF77 broadcast
// parameters, sampled at 44.1 kHz.
func Default() Config {
	var cfg Config
	cfg.Output = "dcf77_time_signal.wav"
	cfg.Signal.CarrierFreq = 77500
	cfg.Signal.SampleRate = 44100
	cfg.Signal.BitDuration = 1
	return cfg
}

// Load reads the TOML file at path on top of the defaults. When path
// is DefaultPath and no such file exists, the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		return cfg, nil
	case err != nil:
		return cfg, fmt.Errorf("config: could not read %q: %w", path, err)
	}

	err = toml.Unmarshal(raw, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: could not parse %q: %w", path, err)
	}

	return cfg, nil
}
