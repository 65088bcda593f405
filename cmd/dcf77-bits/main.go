// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dcf77-bits displays the DCF77 frame encoding a given time.
//
// Usage: dcf77-bits [OPTIONS]
//
// Example:
//
//	$> dcf77-bits -hour 12 -minute 30 -day 15 -month 6 -year 2024
//	frame:   00000000000000000000000111100001100000111111000110000110000
//	minute:  30 (P1=0)
//	hour:    12 (P2=0)
//	day:     15
//	weekday: 6 (Sat)
//	month:    6
//	year:    24 (P3=0)
//	dst:     active=false announce=false
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alessio-bortolotti-heig/DCF77-Generator/frame"
)

func main() {
	log.SetPrefix("dcf77-bits: ")
	log.SetFlags(0)

	now := time.Now()

	var (
		hour   = flag.Int("hour", now.Hour(), "hour to encode (0-23)")
		minute = flag.Int("minute", now.Minute(), "minute to encode (0-59)")
		day    = flag.Int("day", now.Day(), "day of the month to encode (1-31)")
		month  = flag.Int("month", int(now.Month()), "month to encode (1-12)")
		year   = flag.Int("year", now.Year(), "year to encode")
		dst    = flag.Bool("dst", false, "daylight saving time in effect")
		dstChg = flag.Bool("dst-announce", false, "DST switch within the next hour")
	)

	flag.Usage = func() {
		fmt.Printf(`Usage: dcf77-bits [OPTIONS]

ex:
 $> dcf77-bits -hour 12 -minute 30 -day 15 -month 6 -year 2024

options:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	err := process(os.Stdout, frame.Time{
		Hour:        *hour,
		Minute:      *minute,
		Day:         *day,
		Month:       *month,
		Year:        *year,
		DST:         *dst,
		DSTAnnounce: *dstChg,
	})
	if err != nil {
		log.Fatalf("could not display DCF77 frame: %+v", err)
	}
}

var weekdays = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func process(w io.Writer, t frame.Time) error {
	frm, err := frame.Encode(t)
	if err != nil {
		return fmt.Errorf("could not encode time frame: %w", err)
	}

	wbuf := bufio.NewWriter(w)
	defer wbuf.Flush()

	fmt.Fprintf(wbuf, "frame:   %v\n", frm)
	fmt.Fprintf(wbuf, "minute:  %2d (P1=%d)\n", frm.Minute(), frm.ParityMinute())
	fmt.Fprintf(wbuf, "hour:    %2d (P2=%d)\n", frm.Hour(), frm.ParityHour())
	fmt.Fprintf(wbuf, "day:     %2d\n", frm.Day())
	fmt.Fprintf(wbuf, "weekday: %d (%s)\n", frm.Weekday(), weekdays[frm.Weekday()])
	fmt.Fprintf(wbuf, "month:   %2d\n", frm.Month())
	fmt.Fprintf(wbuf, "year:    %02d (P3=%d)\n", frm.Year(), frm.ParityDate())
	fmt.Fprintf(wbuf, "dst:     active=%v announce=%v\n", frm.DST(), frm.DSTAnnounce())

	return nil
}
