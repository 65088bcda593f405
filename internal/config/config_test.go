// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefault(t *testing.T) {
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(dir)

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("could not load defaults: %+v", err)
	}
	if got, want := cfg, Default(); got != want {
		t.Fatalf("invalid config:\ngot= %#v\nwant=%#v", got, want)
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	if err == nil {
		t.Fatalf("expected an error, got none")
	}
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "dcf77.toml")
	err := os.WriteFile(fname, []byte(`
output = "signal.wav"

[signal]
carrier-frequency = 15500.0
sample-rate = 48000.0
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fname)
	if err != nil {
		t.Fatalf("could not load config: %+v", err)
	}

	if got, want := cfg.Output, "signal.wav"; got != want {
		t.Fatalf("invalid output: got=%q, want=%q", got, want)
	}
	if got, want := cfg.Signal.CarrierFreq, 15500.0; got != want {
		t.Fatalf("invalid carrier frequency: got=%v, want=%v", got, want)
	}
	if got, want := cfg.Signal.SampleRate, 48000.0; got != want {
		t.Fatalf("invalid sample rate: got=%v, want=%v", got, want)
	}
	// untouched keys keep their defaults
	if got, want := cfg.Signal.BitDuration, 1.0; got != want {
		t.Fatalf("invalid bit duration: got=%v, want=%v", got, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "dcf77.toml")
	err := os.WriteFile(fname, []byte(`output = {{`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Load(fname)
	if err == nil {
		t.Fatalf("expected an error, got none")
	}
}
