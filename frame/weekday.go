// Copyright 2024 The DCF77-Generator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "fmt"

// weekday returns the ISO day of the week (Monday=1 .. Sunday=7) of
// the given proleptic-Gregorian date, or ErrInvalidDate when the date
// does not exist. Self-contained so the encoding never depends on a
// host calendar or locale facility.
func weekday(year, month, day int) (int, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysIn(month, year) {
		return 0, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}

	// Sakamoto's method, Sunday=0.
	moff := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := year
	if month < 3 {
		y--
	}
	w := (y + y/4 - y/100 + y/400 + moff[month-1] + day) % 7

	return (w+6)%7 + 1, nil
}

func daysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
