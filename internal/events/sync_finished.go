package events

import "time"

const (
	SyncTopic        = "timesheet.sync.v1"
	SyncFinishedType = "timesheet.sync.finished"
)

// SyncFinishedEvent is published when a punch sync job reaches a terminal
// state, completed or error. Downstream consumers (payroll closing, BI) read
// the counters to detect degraded runs.
type SyncFinishedEvent struct {
	EventType  string    `json:"event_type"`
	JobID      string    `json:"job_id"`
	Status     string    `json:"status"`
	Synced     int       `json:"synced"`
	Errors     int       `json:"errors"`
	TotalDays  int       `json:"total_days"`
	OccurredAt time.Time `json:"occurred_at"`
}
