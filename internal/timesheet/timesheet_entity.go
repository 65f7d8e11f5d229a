package timesheet

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClassNormal             = "normal"
	ClassLate               = "late"
	ClassOvertime           = "overtime"
	ClassAjuste             = "ajuste"
	ClassFolga              = "folga"
	ClassFalta              = "falta"
	ClassSemRegistro        = "sem_registro"
	ClassAparelhoDanificado = "aparelho_danificado"
)

// DailyRecord is one reconciled day for one employee. Classification and the
// minute totals are always derived by the engine; they are never written
// independently of a recompute.
type DailyRecord struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID         uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_employee_date"`
	Date               time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_employee_date"`
	Punch1             *string   `gorm:"column:punch_1;type:varchar(5)"`
	Punch2             *string   `gorm:"column:punch_2;type:varchar(5)"`
	Punch3             *string   `gorm:"column:punch_3;type:varchar(5)"`
	Punch4             *string   `gorm:"column:punch_4;type:varchar(5)"`
	TotalWorkedMinutes *int      `gorm:"column:total_worked_minutes"`
	DifferenceMinutes  *int      `gorm:"column:difference_minutes"`
	Classification     string    `gorm:"column:classification;type:varchar(30);not null"`
	EditReason         *string   `gorm:"column:edit_reason;type:text"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (DailyRecord) TableName() string {
	return "daily_records"
}

func (r *DailyRecord) punches() []string {
	out := make([]string, 0, 4)
	for _, p := range []*string{r.Punch1, r.Punch2, r.Punch3, r.Punch4} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func (r *DailyRecord) setPunches(punches []string) {
	slots := []**string{&r.Punch1, &r.Punch2, &r.Punch3, &r.Punch4}
	for i, slot := range slots {
		if i < len(punches) {
			v := punches[i]
			*slot = &v
		} else {
			*slot = nil
		}
	}
}
