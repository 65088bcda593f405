// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dcf77-gen encodes a wall-clock time into a DCF77 frame,
// synthesizes the amplitude-modulated carrier and writes it to a
// 16-bit PCM mono WAV file.
//
// Usage: dcf77-gen [OPTIONS]
//
// Example:
//
//	$> dcf77-gen -hour 12 -minute 30 -day 15 -month 6 -year 2024 -o signal.wav
//	$> dcf77-gen -i
//	$> dcf77-gen -cfg studio.toml -rate 192000
//
// Without time flags, the current local wall-clock time is encoded.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	dcf77gen "github.com/alessio-bortolotti-heig/DCF77-Generator"
	"github.com/alessio-bortolotti-heig/DCF77-Generator/frame"
	"github.com/alessio-bortolotti-heig/DCF77-Generator/internal/config"
	"github.com/alessio-bortolotti-heig/DCF77-Generator/internal/prompt"
	"github.com/alessio-bortolotti-heig/DCF77-Generator/internal/wavio"
	"github.com/alessio-bortolotti-heig/DCF77-Generator/signal"
	"github.com/peterh/liner"
)

func main() {
	log.SetPrefix("dcf77-gen: ")
	log.SetFlags(0)

	now := time.Now()

	var (
		oname   = flag.String("o", "", "path to the output WAV file (overrides config)")
		cname   = flag.String("cfg", config.DefaultPath, "path to a TOML configuration file")
		ask     = flag.Bool("i", false, "collect time, date and DST flags interactively")
		carrier = flag.Float64("carrier", 0, "carrier frequency override, in Hz")
		rate    = flag.Float64("rate", 0, "sample rate override, in Hz")
		bitDur  = flag.Float64("bit-duration", 0, "bit duration override, in seconds")
		doVers  = flag.Bool("version", false, "print version and exit")

		hour   = flag.Int("hour", now.Hour(), "hour to encode (0-23)")
		minute = flag.Int("minute", now.Minute(), "minute to encode (0-59)")
		day    = flag.Int("day", now.Day(), "day of the month to encode (1-31)")
		month  = flag.Int("month", int(now.Month()), "month to encode (1-12)")
		year   = flag.Int("year", now.Year(), "year to encode")
		dst    = flag.Bool("dst", false, "daylight saving time in effect")
		dstChg = flag.Bool("dst-announce", false, "DST switch within the next hour")
	)

	flag.Usage = func() {
		fmt.Printf(`Usage: dcf77-gen [OPTIONS]

ex:
 $> dcf77-gen -hour 12 -minute 30 -day 15 -month 6 -year 2024 -o signal.wav
 $> dcf77-gen -i

options:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *doVers {
		vers, sum := dcf77gen.Version()
		fmt.Printf("dcf77-gen %s %s\n", vers, sum)
		return
	}

	cfg, err := config.Load(*cname)
	if err != nil {
		log.Fatalf("could not load configuration: %+v", err)
	}
	if *oname != "" {
		cfg.Output = *oname
	}
	if *carrier > 0 {
		cfg.Signal.CarrierFreq = *carrier
	}
	if *rate > 0 {
		cfg.Signal.SampleRate = *rate
	}
	if *bitDur > 0 {
		cfg.Signal.BitDuration = *bitDur
	}

	t := frame.Time{
		Hour:        *hour,
		Minute:      *minute,
		Day:         *day,
		Month:       *month,
		Year:        *year,
		DST:         *dst,
		DSTAnnounce: *dstChg,
	}
	if *ask {
		t, err = askTime()
		if err != nil {
			log.Fatalf("could not read time values: %+v", err)
		}
	}

	err = process(cfg, t)
	if err != nil {
		log.Fatalf("could not generate DCF77 signal: %+v", err)
	}
}

// askTime runs the interactive session: one validated prompt per
// field, re-asked until the answer is acceptable.
func askTime() (frame.Time, error) {
	term := liner.NewLiner()
	defer term.Close()
	term.SetCtrlCAborts(true)

	var (
		t   frame.Time
		err error
		ask = prompt.New(term, os.Stderr)

		within = func(min, max int) func(int) bool {
			return func(v int) bool { return v >= min && v <= max }
		}
	)

	t.Hour, err = ask.Int("Hour (0-23): ", within(0, 23),
		"The hour must be between 0 and 23.")
	if err != nil {
		return t, err
	}
	t.Minute, err = ask.Int("Minute (0-59): ", within(0, 59),
		"The minute must be between 0 and 59.")
	if err != nil {
		return t, err
	}
	t.Day, err = ask.Int("Day (1-31): ", within(1, 31),
		"The day must be between 1 and 31.")
	if err != nil {
		return t, err
	}
	t.Month, err = ask.Int("Month (1-12): ", within(1, 12),
		"The month must be between 1 and 12.")
	if err != nil {
		return t, err
	}
	t.Year, err = ask.Int("Year: ", func(v int) bool { return v > 0 },
		"The year must be a positive number.")
	if err != nil {
		return t, err
	}
	t.DST, err = ask.Bool01("DST Status (0 for standard, 1 for DST): ",
		"The DST status must be 0 (standard) or 1 (DST).")
	if err != nil {
		return t, err
	}
	t.DSTAnnounce, err = ask.Bool01("DST Change (0 for no change, 1 for change within 1 hour): ",
		"The DST change must be 0 (no change) or 1 (change within 1 hour).")
	if err != nil {
		return t, err
	}

	return t, nil
}

func process(cfg config.Config, t frame.Time) error {
	frm, err := frame.Encode(t)
	if err != nil {
		return fmt.Errorf("could not encode time frame: %w", err)
	}

	sig := signal.Synthesize(frm, signal.Params{
		CarrierFreq: cfg.Signal.CarrierFreq,
		SampleRate:  cfg.Signal.SampleRate,
		BitDuration: cfg.Signal.BitDuration,
	})

	o, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer o.Close()

	err = wavio.Write(o, sig, int(cfg.Signal.SampleRate))
	if err != nil {
		return fmt.Errorf("could not write %q: %w", cfg.Output, err)
	}

	err = o.Close()
	if err != nil {
		return fmt.Errorf("could not close %q: %w", cfg.Output, err)
	}

	log.Printf("frame:  %v", frm)
	log.Printf("output: %s (%d samples at %g Hz)",
		cfg.Output, len(sig), cfg.Signal.SampleRate,
	)
	return nil
}
