// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signal

import (
	"math"
	"reflect"
	"testing"

	"github.com/alessio-bortolotti-heig/DCF77-Generator/frame"
)

func TestSynthesizeLength(t *testing.T) {
	frm, err := frame.Encode(frame.Time{
		Hour: 12, Minute: 30, Day: 15, Month: 6, Year: 2024,
	})
	if err != nil {
		t.Fatalf("could not encode frame: %+v", err)
	}

	for _, tc := range []struct {
		name string
		p    Params
		want int
	}{
		{"default", Default(), 44100 * 59},
		{"low-rate", Params{CarrierFreq: 77500, SampleRate: 1024, BitDuration: 1}, 1024 * 59},
		{"short-bit", Params{CarrierFreq: 1000, SampleRate: 8000, BitDuration: 0.25}, 2000 * 59},
		{"rounded", Params{CarrierFreq: 1000, SampleRate: 44100, BitDuration: 0.1015}, 4476 * 59},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sig := Synthesize(frm, tc.p)
			if got, want := len(sig), tc.want; got != want {
				t.Fatalf("invalid sample count: got=%d, want=%d", got, want)
			}
		})
	}
}

func TestSynthesizeEnvelope(t *testing.T) {
	// minute=63 yields a solid run of 1-bits next to reserved 0-bits.
	frm, err := frame.Encode(frame.Time{
		Hour: 23, Minute: 63, Day: 31, Month: 12, Year: 1999, DST: true,
	})
	if err != nil {
		t.Fatalf("could not encode frame: %+v", err)
	}

	p := Params{CarrierFreq: 500, SampleRate: 8000, BitDuration: 1}
	sig := Synthesize(frm, p)

	spb := 8000
	for i, bit := range frm {
		win := 800 // 100 ms
		if bit != 0 {
			win = 1600 // 200 ms
		}
		for j := 0; j < spb; j++ {
			ts := float64(i*spb+j) / p.SampleRate
			carrier := math.Sin(2 * math.Pi * p.CarrierFreq * ts)
			want := carrier * highScale
			if j < win {
				want = carrier * lowScale
			}
			if got := sig[i*spb+j]; math.Abs(got-want) > 1e-12 {
				t.Fatalf("bit %d (value %d), sample %d: got=%v, want=%v",
					i, bit, j, got, want,
				)
			}
		}
	}
}

func TestSynthesizeWindowClamp(t *testing.T) {
	frm, err := frame.Encode(frame.Time{
		Hour: 0, Minute: 63, Day: 1, Month: 1, Year: 2024,
	})
	if err != nil {
		t.Fatalf("could not encode frame: %+v", err)
	}

	// 150 ms slots: shorter than the 200 ms window of a 1-bit, so the
	// whole slot of a 1-bit stays at reduced amplitude.
	p := Params{CarrierFreq: 500, SampleRate: 8000, BitDuration: 0.15}
	sig := Synthesize(frm, p)

	spb := 1200
	if got, want := len(sig), spb*59; got != want {
		t.Fatalf("invalid sample count: got=%d, want=%d", got, want)
	}

	for i, bit := range frm {
		win := 800 // 100 ms
		if bit != 0 {
			win = spb // clamped
		}
		for j := 0; j < spb; j++ {
			ts := float64(i*spb+j) / p.SampleRate
			carrier := math.Sin(2 * math.Pi * p.CarrierFreq * ts)
			want := carrier * highScale
			if j < win {
				want = carrier * lowScale
			}
			if got := sig[i*spb+j]; math.Abs(got-want) > 1e-12 {
				t.Fatalf("bit %d (value %d), sample %d: got=%v, want=%v",
					i, bit, j, got, want,
				)
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	frm, err := frame.Encode(frame.Time{
		Hour: 6, Minute: 45, Day: 29, Month: 2, Year: 2024, DSTAnnounce: true,
	})
	if err != nil {
		t.Fatalf("could not encode frame: %+v", err)
	}

	p := Params{CarrierFreq: 440, SampleRate: 4000, BitDuration: 0.5}
	if got, want := Synthesize(frm, p), Synthesize(frm, p); !reflect.DeepEqual(got, want) {
		t.Fatalf("synthesis is not deterministic")
	}
}
