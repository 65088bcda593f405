// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame encodes wall-clock time into the 59-bit DCF77
// time-code frame, one bit per transmitted second.
package frame

import (
	"errors"
	"strings"
)

// Bit indices of the fields within a DCF77 frame.
// Ranges are half-open [from, to); each parity bit covers the field
// that precedes it. Bits 0-16, 19 and 20 are left at zero.
const (
	bitDST         = 17 // daylight saving time in effect
	bitDSTAnnounce = 18 // DST switch within the next hour

	minuteFrom = 21
	minuteTo   = 28
	bitP1      = 28

	hourFrom = 29
	hourTo   = 35
	bitP2    = 35

	dayFrom = 36
	dayTo   = 42

	weekdayFrom = 42
	weekdayTo   = 45

	monthFrom = 45
	monthTo   = 50

	yearFrom = 50
	yearTo   = 58
	bitP3    = 58 // covers bits [dayFrom, yearTo)
)

// ErrInvalidDate is returned by Encode when (Day, Month, Year) do not
// form a real calendar date.
var ErrInvalidDate = errors.New("frame: invalid date")

// Time holds the wall-clock values to encode. Hour, Minute, Day and
// Month are trusted to lie in their natural ranges; Encode only checks
// that (Day, Month, Year) is a real calendar date.
type Time struct {
	Hour   int // 0-23
	Minute int // 0-59
	Day    int // 1-31
	Month  int // 1-12
	Year   int // 4-digit year

	DST         bool // daylight saving time in effect
	DSTAnnounce bool // DST switch within the next hour
}

// Frame is one DCF77 time-code frame: 59 bit values, each 0 or 1,
// indexed by transmission second. A Frame is immutable once encoded.
type Frame [59]uint8

// Encode packs t into a DCF77 frame. The day of the week is derived
// from (Day, Month, Year); an impossible date yields ErrInvalidDate.
func Encode(t Time) (Frame, error) {
	var f Frame

	wd, err := weekday(t.Year, t.Month, t.Day)
	if err != nil {
		return f, err
	}

	if t.DST {
		f[bitDST] = 1
	}
	if t.DSTAnnounce {
		f[bitDSTAnnounce] = 1
	}

	f.setBits(minuteFrom, minuteTo, t.Minute)
	f[bitP1] = f.parity(minuteFrom, minuteTo)

	f.setBits(hourFrom, hourTo, t.Hour)
	f[bitP2] = f.parity(hourFrom, hourTo)

	f.setBits(dayFrom, dayTo, t.Day)
	f.setBits(weekdayFrom, weekdayTo, wd)
	f.setBits(monthFrom, monthTo, t.Month)
	f.setBits(yearFrom, yearTo, t.Year%100)
	f[bitP3] = f.parity(dayFrom, yearTo)

	return f, nil
}

// setBits stores v right-justified, MSB first, into bits [from, to).
func (f *Frame) setBits(from, to, v int) {
	for i := to - 1; i >= from; i-- {
		f[i] = uint8(v & 1)
		v >>= 1
	}
}

// parity returns the even-parity bit over bits [from, to).
func (f *Frame) parity(from, to int) uint8 {
	var p uint8
	for _, b := range f[from:to] {
		p ^= b
	}
	return p
}

// field decodes bits [from, to) as an MSB-first binary value.
func (f Frame) field(from, to int) int {
	v := 0
	for _, b := range f[from:to] {
		v = v<<1 | int(b)
	}
	return v
}

// Minute returns the encoded minute.
func (f Frame) Minute() int { return f.field(minuteFrom, minuteTo) }

// Hour returns the encoded hour.
func (f Frame) Hour() int { return f.field(hourFrom, hourTo) }

// Day returns the encoded day of the month.
func (f Frame) Day() int { return f.field(dayFrom, dayTo) }

// Weekday returns the encoded ISO day of the week (Monday=1, Sunday=7).
func (f Frame) Weekday() int { return f.field(weekdayFrom, weekdayTo) }

// Month returns the encoded month.
func (f Frame) Month() int { return f.field(monthFrom, monthTo) }

// Year returns the encoded two-digit year.
func (f Frame) Year() int { return f.field(yearFrom, yearTo) }

// DST reports whether daylight saving time is flagged in effect.
func (f Frame) DST() bool { return f[bitDST] == 1 }

// DSTAnnounce reports whether a DST switch is flagged within the hour.
func (f Frame) DSTAnnounce() bool { return f[bitDSTAnnounce] == 1 }

// ParityMinute returns the minute parity bit (P1).
func (f Frame) ParityMinute() uint8 { return f[bitP1] }

// ParityHour returns the hour parity bit (P2).
func (f Frame) ParityHour() uint8 { return f[bitP2] }

// ParityDate returns the date parity bit (P3).
func (f Frame) ParityDate() uint8 { return f[bitP3] }

// String renders the frame as a 59-character bit string,
// transmission order, second 0 first.
func (f Frame) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, v := range f {
		b.WriteByte('0' + v)
	}
	return b.String()
}
