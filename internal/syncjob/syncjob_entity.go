package syncjob

import "time"

const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusError     = "error"
)

type DayError struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

// SyncJob is owned by the manager; only the driving worker mutates it, and
// always under the manager's lock. It becomes immutable once terminal.
type SyncJob struct {
	ID          string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	Synced      int
	Errors      int
	TotalDays   int
	CurrentDate *time.Time
	CompletedAt *time.Time
	DayErrors   []DayError
}

func (j *SyncJob) terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusError
}

// snapshot returns a point-in-time copy; callers must hold the manager lock.
func (j *SyncJob) snapshot() Snapshot {
	s := Snapshot{
		ID:        j.ID,
		StartDate: j.StartDate.Format("2006-01-02"),
		EndDate:   j.EndDate.Format("2006-01-02"),
		Status:    j.Status,
		Synced:    j.Synced,
		Errors:    j.Errors,
		TotalDays: j.TotalDays,
	}
	if j.CurrentDate != nil {
		v := j.CurrentDate.Format("2006-01-02")
		s.CurrentDate = &v
	}
	if j.CompletedAt != nil {
		v := *j.CompletedAt
		s.CompletedAt = &v
	}
	if len(j.DayErrors) > 0 {
		s.DayErrors = make([]DayError, len(j.DayErrors))
		copy(s.DayErrors, j.DayErrors)
	}
	return s
}
