// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signal synthesizes the amplitude-shift-keyed carrier
// waveform of an encoded DCF77 frame.
package signal

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/alessio-bortolotti-heig/DCF77-Generator/frame"
)

// DCF77 signals a logic 0 by dropping the carrier to 10% amplitude for
// the first 100 ms of the bit slot, a logic 1 for the first 200 ms.
// The remainder of each slot carries 90% amplitude.
const (
	lowScale  = 0.1
	highScale = 0.9

	window0 = 0.1 // seconds
	window1 = 0.2 // seconds
)

// Params describes the synthesized waveform.
type Params struct {
	CarrierFreq float64 // carrier frequency, in Hz
	SampleRate  float64 // sampling rate, in Hz
	BitDuration float64 // duration of one bit slot, in seconds
}

// Default returns the parameters of the simulated DCF77 broadcast:
// the 77.5 kHz carrier sampled at 44.1 kHz, one second per bit.
func Default() Params {
	return Params{
		CarrierFreq: 77500,
		SampleRate:  44100,
		BitDuration: 1,
	}
}

// Synthesize returns the amplitude-modulated carrier for f, spanning
// 59 x p.BitDuration seconds. Each bit's slot is filled by its own
// goroutine; the slots are disjoint, so the writers need no locking.
func Synthesize(f frame.Frame, p Params) []float64 {
	spb := int(math.Round(p.SampleRate * p.BitDuration))
	sig := make([]float64, spb*len(f))

	var grp errgroup.Group
	for i, bit := range f {
		i, bit := i, bit
		grp.Go(func() error {
			win := int(math.Round(window0 * p.SampleRate))
			if bit != 0 {
				win = int(math.Round(window1 * p.SampleRate))
			}
			if win > spb {
				win = spb // bit slots shorter than the keying window
			}
			beg := i * spb
			for j := 0; j < spb; j++ {
				t := float64(beg+j) / p.SampleRate
				carrier := math.Sin(2 * math.Pi * p.CarrierFreq * t)
				if j < win {
					sig[beg+j] = carrier * lowScale
				} else {
					sig[beg+j] = carrier * highScale
				}
			}
			return nil
		})
	}
	_ = grp.Wait() // slot writers can not fail

	return sig
}
