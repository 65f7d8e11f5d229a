package syncjob

import "time"

type SubmitSyncRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type SubmitSyncResponse struct {
	JobID string `json:"job_id"`
}

type Snapshot struct {
	ID          string     `json:"id"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	Status      string     `json:"status"`
	Synced      int        `json:"synced"`
	Errors      int        `json:"errors"`
	TotalDays   int        `json:"total_days"`
	CurrentDate *string    `json:"current_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DayErrors   []DayError `json:"day_errors,omitempty"`
}
