package timesheet

import "time"

type ClassifyRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Date       string   `json:"date" binding:"required,datetime=2006-01-02"`
	Punches    []string `json:"punches" binding:"max=4"`
}

type EditRecordRequest struct {
	Punches []string `json:"punches" binding:"max=4"`
	Reason  string   `json:"reason" binding:"required"`
}

type RangeQuery struct {
	EmployeeID string
	LeaderID   string
	Start      time.Time
	End        time.Time
}

type DailyRecordResponse struct {
	ID                 string   `json:"id"`
	EmployeeID         string   `json:"employee_id"`
	Date               string   `json:"date"`
	Punches            []string `json:"punches"`
	TotalWorkedMinutes *int     `json:"total_worked_minutes"`
	DifferenceMinutes  *int     `json:"difference_minutes"`
	Classification     string   `json:"classification"`
	EditReason         *string  `json:"edit_reason,omitempty"`
}

type MonthlyBalanceResponse struct {
	Month          int  `json:"month"`
	Days           int  `json:"days"`
	LateCount      int  `json:"late_count"`
	OvertimeCount  int  `json:"overtime_count"`
	Difference     *int `json:"difference"`
	RunningBalance *int `json:"running_balance"`
}

func mapToResponse(r DailyRecord) DailyRecordResponse {
	return DailyRecordResponse{
		ID:                 r.ID.String(),
		EmployeeID:         r.EmployeeID.String(),
		Date:               r.Date.Format("2006-01-02"),
		Punches:            r.punches(),
		TotalWorkedMinutes: r.TotalWorkedMinutes,
		DifferenceMinutes:  r.DifferenceMinutes,
		Classification:     r.Classification,
		EditReason:         r.EditReason,
	}
}

func mapBalances(balances []MonthlyBalance) []MonthlyBalanceResponse {
	out := make([]MonthlyBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = MonthlyBalanceResponse{
			Month:          b.Month,
			Days:           b.Days,
			LateCount:      b.LateCount,
			OvertimeCount:  b.OvertimeCount,
			Difference:     b.Difference,
			RunningBalance: b.RunningBalance,
		}
	}
	return out
}
