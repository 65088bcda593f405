// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavio persists sample buffers as 16-bit PCM mono WAV streams.
package wavio

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"
)

// Write normalizes sig by its peak absolute value, scales it to the
// int16 range and encodes it as a single-channel 16-bit PCM WAV stream.
// An all-zero signal is written as silence.
func Write(w io.WriteSeeker, sig []float64, rate int) error {
	peak := floats.Norm(sig, math.Inf(1))
	if peak == 0 {
		peak = 1
	}

	data := make([]int, len(sig))
	for i, v := range sig {
		data[i] = int(math.Round(v / peak * math.MaxInt16))
	}

	enc := wav.NewEncoder(w, rate, 16, 1, 1)
	err := enc.Write(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		return fmt.Errorf("wavio: could not write samples: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavio: could not finalize WAV stream: %w", err)
	}

	return nil
}
