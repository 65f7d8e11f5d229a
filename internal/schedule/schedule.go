// Package schedule resolves the expected punch pattern for a calendar date.
// All functions are pure and safe for concurrent use.
package schedule

import (
	"time"

	"bancohoras/internal/holiday"
)

type Kind int

const (
	// FullDay expects four punches: entry, lunch-out, lunch-in, exit.
	FullDay Kind = iota
	// HalfDaySaturday expects two punches: entry and exit, no lunch break.
	HalfDaySaturday
	// OffDay expects no punches (Sunday or holiday).
	OffDay
)

func (k Kind) String() string {
	switch k {
	case FullDay:
		return "full_day"
	case HalfDaySaturday:
		return "half_day_saturday"
	case OffDay:
		return "off_day"
	default:
		return "unknown"
	}
}

// Config carries the workday targets. Tolerance is the band, in minutes,
// around the expected total inside which a day still counts as normal.
type Config struct {
	FullDayMinutes   int
	SaturdayMinutes  int
	ToleranceMinutes int
}

func DefaultConfig() Config {
	return Config{
		FullDayMinutes:   480,
		SaturdayMinutes:  240,
		ToleranceMinutes: 0,
	}
}

// ExpectedMinutes returns the target worked minutes for the schedule kind.
func (c Config) ExpectedMinutes(kind Kind) int {
	switch kind {
	case FullDay:
		return c.FullDayMinutes
	case HalfDaySaturday:
		return c.SaturdayMinutes
	default:
		return 0
	}
}

// ExpectedPunches returns how many punches the schedule kind expects.
func (k Kind) ExpectedPunches() int {
	switch k {
	case FullDay:
		return 4
	case HalfDaySaturday:
		return 2
	default:
		return 0
	}
}

// Resolve determines the expected schedule for a date. Holidays take
// precedence over the weekday rule.
func Resolve(date time.Time, cal holiday.Calendar) Kind {
	if cal.Contains(date) {
		return OffDay
	}
	switch date.Weekday() {
	case time.Sunday:
		return OffDay
	case time.Saturday:
		return HalfDaySaturday
	default:
		return FullDay
	}
}
