package timesheet

import (
	"strconv"
	"strings"

	"bancohoras/internal/schedule"
)

// DeviceFailureSentinel is the value the punch clock records in place of a
// timestamp when its reader failed.
const DeviceFailureSentinel = "--:--"

type Result struct {
	Classification     string
	TotalWorkedMinutes *int
	DifferenceMinutes  *int
}

type parseOutcome int

const (
	punchesOK parseOutcome = iota
	punchesAbsent
	punchesMalformed
)

// parsePunches converts HH:MM strings to minutes since midnight. The outcome
// is explicit: absent (no punches at all), malformed (sentinel, unparseable
// value or non-increasing sequence) or ok.
func parsePunches(raw []string) ([]int, parseOutcome) {
	if len(raw) == 0 {
		return nil, punchesAbsent
	}

	minutes := make([]int, 0, len(raw))
	for _, p := range raw {
		if p == DeviceFailureSentinel {
			return nil, punchesMalformed
		}
		m, ok := parseClock(p)
		if !ok {
			return nil, punchesMalformed
		}
		minutes = append(minutes, m)
	}

	for i := 1; i < len(minutes); i++ {
		if minutes[i] < minutes[i-1] {
			return nil, punchesMalformed
		}
	}

	return minutes, punchesOK
}

func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// workedMinutes sums the recognized in/out pairs: (entry, lunch-out) and
// (lunch-in, exit) on a full day, (entry, exit) on a Saturday. A trailing
// unpaired punch is ignored. On a Saturday the second recorded punch is the
// exit, whatever else follows.
func workedMinutes(minutes []int, kind schedule.Kind) int {
	if kind == schedule.HalfDaySaturday && len(minutes) >= 2 {
		return minutes[1] - minutes[0]
	}

	total := 0
	for i := 0; i+1 < len(minutes); i += 2 {
		total += minutes[i+1] - minutes[i]
	}
	return total
}

// Classify derives the day's outcome from its punches and expected schedule.
// The sign convention carries through every aggregation: negative difference
// means the employee owes time, positive means the employee is owed time.
func Classify(punches []string, kind schedule.Kind, cfg schedule.Config) Result {
	minutes, outcome := parsePunches(punches)

	if outcome == punchesMalformed {
		// No usable signal: excluded from balance sums, visible to callers.
		return Result{Classification: ClassAparelhoDanificado}
	}

	if kind == schedule.OffDay {
		if outcome == punchesAbsent {
			return Result{
				Classification:     ClassFolga,
				TotalWorkedMinutes: intPtr(0),
				DifferenceMinutes:  intPtr(0),
			}
		}
		// Worked on a day off: the whole worked time is credited.
		worked := workedMinutes(minutes, kind)
		return Result{
			Classification:     ClassAjuste,
			TotalWorkedMinutes: intPtr(worked),
			DifferenceMinutes:  intPtr(worked),
		}
	}

	if outcome == punchesAbsent {
		return Result{
			Classification:     ClassFalta,
			TotalWorkedMinutes: intPtr(0),
			DifferenceMinutes:  intPtr(-cfg.ExpectedMinutes(kind)),
		}
	}

	worked := workedMinutes(minutes, kind)
	diff := worked - cfg.ExpectedMinutes(kind)

	classification := ClassNormal
	switch {
	case diff > cfg.ToleranceMinutes:
		classification = ClassOvertime
	case diff < -cfg.ToleranceMinutes:
		classification = ClassLate
	}

	return Result{
		Classification:     classification,
		TotalWorkedMinutes: intPtr(worked),
		DifferenceMinutes:  intPtr(diff),
	}
}

func intPtr(v int) *int {
	return &v
}
