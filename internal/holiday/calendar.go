package holiday

import "time"

// Calendar is an immutable snapshot of holiday rows loaded for some window.
// It is safe for concurrent use; the sync worker shares one across goroutines.
type Calendar struct {
	holidays []Holiday
}

func NewCalendar(holidays []Holiday) Calendar {
	return Calendar{holidays: holidays}
}

// Contains reports whether any holiday falls on the given date. More than one
// holiday may match the same date; one match is enough.
func (c Calendar) Contains(date time.Time) bool {
	for _, h := range c.holidays {
		if h.Matches(date) {
			return true
		}
	}
	return false
}

func (c Calendar) Len() int {
	return len(c.holidays)
}
