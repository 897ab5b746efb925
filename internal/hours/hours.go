// Package hours computes worked time between clock readings and splits it
// into the regular, 125% and 150% pay bands.
package hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// ErrInvalidClock is returned for values that are not a 24-hour "HH:MM" reading.
var ErrInvalidClock = errors.New("invalid clock time")

var (
	regularCap = decimal.NewFromInt(8)
	tier1Cap   = decimal.NewFromInt(9)
)

// Overtime is a total split into pay bands.
type Overtime struct {
	Regular float64
	Tier1   float64
	Tier2   float64
}

// ParseClock returns the minutes since midnight for an "H:MM" or "HH:MM" value.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hh*60 + mm, nil
}

// Wrap folds a minute offset into a single day, [0, 1440).
func Wrap(minutes int) int {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutes
}

// FormatClock renders minutes as "HH:MM", wrapping around midnight in
// either direction.
func FormatClock(minutes int) string {
	minutes = Wrap(minutes)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration renders a non-negative minute count as "HH:MM" without wrapping.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Between returns the hours from entry to exit minus the break, rounded to two
// decimals. An exit earlier than the entry is taken to be on the next day.
// The result is negative when the break is longer than the span.
func Between(entry, exit string, breakMinutes int) (float64, error) {
	start, err := ParseClock(entry)
	if err != nil {
		return 0, fmt.Errorf("entry: %w", err)
	}
	end, err := ParseClock(exit)
	if err != nil {
		return 0, fmt.Errorf("exit: %w", err)
	}
	return BetweenMinutes(start, end, breakMinutes), nil
}

// BetweenMinutes is Between over minutes-since-midnight values.
func BetweenMinutes(start, end, breakMinutes int) float64 {
	if end < start {
		end += minutesPerDay
	}
	worked := decimal.NewFromInt(int64(end - start - breakMinutes))
	return worked.Div(decimal.NewFromInt(60)).Round(2).InexactFloat64()
}

// Breakdown splits total hours: the first 8 are regular, the ninth is paid at
// 125% and anything beyond at 150%. Each band is rounded on its own.
func Breakdown(total float64) Overtime {
	t := decimal.NewFromFloat(total)
	var regular, tier1, tier2 decimal.Decimal
	switch {
	case t.LessThanOrEqual(regularCap):
		regular = t
	case t.LessThanOrEqual(tier1Cap):
		regular = regularCap
		tier1 = t.Sub(regularCap)
	default:
		regular = regularCap
		tier1 = tier1Cap.Sub(regularCap)
		tier2 = t.Sub(tier1Cap)
	}
	return Overtime{
		Regular: regular.Round(2).InexactFloat64(),
		Tier1:   tier1.Round(2).InexactFloat64(),
		Tier2:   tier2.Round(2).InexactFloat64(),
	}
}
