package loanmath

import (
	"fmt"

	"time"

	"github.com/shopspring/decimal"
)

// DaysBetween returns whole calendar days from start to end using date
// components only, so time-of-day and timezone never leak into a day count.
// Negative when end is before start.
func DaysBetween(start, end time.Time) int {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	s := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	e := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / (24 * time.Hour))
}

// -------------------- 30/360 U.S. (Bond Basis) --------------------

// days360US returns (numerator, denominator=360) under 30/360 U.S. rules:
//   - if d1==31 → d1=30
//   - if d2==31 && d1>=30 → d2=30
func days360US(start, end time.Time) (int, int) {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	days := (y2-y1)*360 + int(m2-m1)*30 + (d2 - d1)
	return days, 360
}

// -------------------- 30E/360 (Eurobond) --------------------

// days360E returns (numerator, denominator=360) under 30E/360:
//   - both d1,d2 ==31 → 30 unconditionally
func days360E(start, end time.Time) (int, int) {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 {
		d2 = 30
	}
	days := (y2-y1)*360 + int(m2-m1)*30 + (d2 - d1)
	return days, 360
}

// YearFraction returns the fraction of a year between two dates under the
// given day count convention. ACT/365F is the convention every default
// calculation path in this package uses.
func YearFraction(start, end time.Time, conv DayCountConvention) (Decimal, error) {
	var d, y int
	switch conv {
	case Conv30360US:
		d, y = days360US(start, end)
	case Conv30360E:
		d, y = days360E(start, end)
	case ConvAct360:
		d, y = DaysBetween(start, end), 360
	case ConvAct365F:
		d, y = DaysBetween(start, end), 365
	case ConvActActISDA:
		// denominator = year days of the year where 'start' lies;
		// periods spanning multiple years should be split by the caller
		d, y = DaysBetween(start, end), YearDays(start)
	case ConvAct365AFB:
		days := decimal.NewFromInt(int64(DaysBetween(start, end)))
		return days.Div(decimal.NewFromFloat(365.25)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedConvention, conv)
	}
	return decimal.NewFromInt(int64(d)).Div(decimal.NewFromInt(int64(y))), nil
}

// YearDays returns 366 if t is in a leap year, else 365
func YearDays(t time.Time) int {
	yy := t.Year()
	if yy%4 != 0 {
		return 365
	}
	if yy%100 != 0 {
		return 366
	}
	if yy%400 == 0 {
		return 366
	}
	return 365
}
