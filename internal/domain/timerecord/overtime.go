package timerecord

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/hours"
)

const clockLayout = "15:04:05"

const day = 24 * time.Hour

// Window is an interval anchored to the work date, expressed as offsets
// from midnight. Out may exceed 24h when the interval wraps past midnight.
type Window struct {
	In  time.Duration
	Out time.Duration
}

// ParseClock reads a time-of-day string ("H:MM:SS" or "HH:MM:SS") as an
// offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	t, err := time.Parse(clockLayout, trimmed)
	if err != nil {
		t, err = time.Parse("3:04:05", trimmed)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeData, s)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// ResolveWindow turns a pair of time-of-day strings into an interval on
// the work date. When out is at or before in, the interval wraps to the
// next day and out gains 24 hours. Scheduled and actual windows are
// resolved independently: an overnight shift does not imply an overnight
// punch, and vice versa.
func ResolveWindow(in, out string) (Window, error) {
	inOff, err := ParseClock(in)
	if err != nil {
		return Window{}, err
	}
	outOff, err := ParseClock(out)
	if err != nil {
		return Window{}, err
	}
	if outOff <= inOff {
		outOff += day
	}
	return Window{In: inOff, Out: outOff}, nil
}

// OTBreakdown is the outcome of classifying one checked-out record.
// Hours are whole (ceiling-rounded) and never negative.
type OTBreakdown struct {
	Before  decimal.Decimal
	After   decimal.Decimal
	Between decimal.Decimal
}

func (b OTBreakdown) Total() decimal.Decimal {
	return b.Before.Add(b.After).Add(b.Between)
}

// ClassifyOvertime applies the job-type policy to the scheduled and actual
// windows. Work days accrue before-shift and after-shift OT; holiday,
// leave and training days count the entire worked span as between-shift
// OT. Any other job type accrues nothing, which is not an error. Every
// positive fraction rounds up to the next whole hour.
func ClassifyOvertime(jobType JobType, scheduled, actual Window) OTBreakdown {
	var b OTBreakdown

	switch {
	case jobType == JobTypeWork:
		if actual.In < scheduled.In {
			b.Before = hours.CeilDuration(scheduled.In - actual.In)
		}
		if actual.Out > scheduled.Out {
			b.After = hours.CeilDuration(actual.Out - scheduled.Out)
		}
	case jobType.FullSpanOT():
		b.Between = hours.CeilDuration(actual.Out - actual.In)
	}

	return b
}
