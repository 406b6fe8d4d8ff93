// Package hours converts the mixed-format duration fields stored in
// time_records into canonical hour counts. A field may hold a clock
// duration ("2:30:00"), a decimal hour string ("2.50"), or nothing at all.
package hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrMalformedDuration = errors.New("malformed duration value")

var secondsPerHour = decimal.NewFromInt(3600)

// Parse converts a duration field into a non-negative hour count.
// Empty input is zero. Values containing ':' are read as H:MM:SS elapsed
// time; anything else must be a decimal number of hours. Malformed input
// is an error; callers that aggregate in bulk should use ParseLenient.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	if strings.Contains(s, ":") {
		secs, err := clockSeconds(s)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(secs).Div(secondsPerHour), nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedDuration, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative duration %q", ErrMalformedDuration, raw)
	}
	return d, nil
}

// ParsePtr is Parse over a nullable column value.
func ParsePtr(raw *string) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, nil
	}
	return Parse(*raw)
}

// ParseLenient coalesces malformed values to zero instead of failing.
// Aggregate reports use this; the record-level check-out path stays strict.
func ParseLenient(raw *string) decimal.Decimal {
	d, err := ParsePtr(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Ceil rounds any strictly positive fractional hour count up to the next
// whole hour. A one-minute excess counts as a full hour; this coarse
// policy is intentional. Non-positive input floors to zero.
func Ceil(h decimal.Decimal) decimal.Decimal {
	if h.Sign() <= 0 {
		return decimal.Zero
	}
	return h.Ceil()
}

// CeilDuration applies the same rounding rule to an elapsed duration.
func CeilDuration(d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(d / time.Second)).Div(secondsPerHour).Ceil()
}

func clockSeconds(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}

	var units [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
		}
		units[i] = n
	}
	if units[1] > 59 || units[2] > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}

	return units[0]*3600 + units[1]*60 + units[2], nil
}
