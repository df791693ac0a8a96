package chart

import (
	"errors"
	"strings"
	"time"
	_ "time/tzdata" // zone rules must not depend on the host image

	"github.com/soniakeys/meeus/v3/julian"
)

// Day, month, hour and minute each accept one or two digits.
const birthLayout = "2/1/2006 15:4"

var errEmptyBirthTime = errors.New("date and time of birth are required")

// WallClock is a civil date and time without a zone, minutes precision.
type WallClock struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// ParseBirthTime reads DD/MM/YYYY and HH:MM[:SS]. Seconds are discarded, not rounded.
func ParseBirthTime(date, clock string) (WallClock, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return WallClock{}, errEmptyBirthTime
	}
	if parts := strings.Split(clock, ":"); len(parts) > 2 {
		clock = strings.Join(parts[:2], ":")
	}
	ts, err := time.Parse(birthLayout, date+" "+clock)
	if err != nil {
		return WallClock{}, err
	}
	return WallClock{
		Year:   ts.Year(),
		Month:  ts.Month(),
		Day:    ts.Day(),
		Hour:   ts.Hour(),
		Minute: ts.Minute(),
	}, nil
}

// LocalizeUTC interprets the wall clock in loc and returns the UTC instant.
//
// Ambiguous wall times (clocks set back) resolve to the earlier instant.
// Wall times inside a gap (clocks set forward) use the offset in force before
// the transition, which lands the instant after the gap.
func LocalizeUTC(w WallClock, loc *time.Location) time.Time {
	naive := time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, 0, 0, time.UTC)

	var (
		best  time.Time
		found bool
	)
	for _, near := range []time.Time{naive.Add(-24 * time.Hour), naive, naive.Add(24 * time.Hour)} {
		_, offset := near.In(loc).Zone()
		candidate := naive.Add(-time.Duration(offset) * time.Second)
		if !sameWall(candidate.In(loc), w) {
			continue
		}
		if !found || candidate.Before(best) {
			best = candidate
			found = true
		}
	}
	if found {
		return best.UTC()
	}

	_, before := naive.Add(-24 * time.Hour).In(loc).Zone()
	return naive.Add(-time.Duration(before) * time.Second).UTC()
}

func sameWall(t time.Time, w WallClock) bool {
	return t.Year() == w.Year && t.Month() == w.Month && t.Day() == w.Day &&
		t.Hour() == w.Hour && t.Minute() == w.Minute
}

// JulianDayUT returns the Julian Day of the instant on the UT scale, using
// hours and minutes only.
func JulianDayUT(t time.Time) float64 {
	u := t.UTC()
	hours := float64(u.Hour()) + float64(u.Minute())/60.0
	return julian.CalendarGregorianToJD(u.Year(), int(u.Month()), float64(u.Day())+hours/24.0)
}
