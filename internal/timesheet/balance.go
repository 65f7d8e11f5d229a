package timesheet

// MonthlyBalance is derived on demand, never stored. Months without records
// keep nil Difference/RunningBalance so callers can render them as empty
// instead of implying a computed zero.
type MonthlyBalance struct {
	Month          int
	Days           int
	LateCount      int
	OvertimeCount  int
	Difference     *int
	RunningBalance *int
}

// rollupYear groups an employee's records by month and carries the running
// balance forward chronologically. Records with nil DifferenceMinutes
// (device-failure, no-record days) stay visible in Days but never enter the
// sums.
func rollupYear(records []DailyRecord) []MonthlyBalance {
	type bucket struct {
		days     int
		late     int
		overtime int
		diff     int
	}
	var months [12]bucket

	for _, r := range records {
		m := int(r.Date.Month()) - 1
		months[m].days++
		switch r.Classification {
		case ClassLate:
			months[m].late++
		case ClassOvertime:
			months[m].overtime++
		}
		if r.DifferenceMinutes != nil {
			months[m].diff += *r.DifferenceMinutes
		}
	}

	out := make([]MonthlyBalance, 12)
	running := 0
	for i, b := range months {
		mb := MonthlyBalance{
			Month:         i + 1,
			Days:          b.days,
			LateCount:     b.late,
			OvertimeCount: b.overtime,
		}
		if b.days > 0 {
			running += b.diff
			diff := b.diff
			cum := running
			mb.Difference = &diff
			mb.RunningBalance = &cum
		}
		out[i] = mb
	}
	return out
}
