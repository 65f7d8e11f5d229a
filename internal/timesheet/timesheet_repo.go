package timesheet

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, rec *DailyRecord) error
	FindByID(ctx context.Context, id string) (*DailyRecord, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyRecord, error)
	FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]DailyRecord, error)
	FindRangeByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]DailyRecord, error)
	FindRangeByLeader(ctx context.Context, leaderID string, start, end time.Time) ([]DailyRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Upsert keeps (employee_id, date) unique with last-writer-wins semantics:
// overlapping sync jobs writing the same row serialize on the constraint.
func (r *repository) Upsert(ctx context.Context, rec *DailyRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"punch_1", "punch_2", "punch_3", "punch_4",
			"total_worked_minutes", "difference_minutes",
			"classification", "edit_reason", "updated_at",
		}),
	}).Create(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*DailyRecord, error) {
	var rec DailyRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyRecord, error) {
	var rec DailyRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]DailyRecord, error) {
	var rows []DailyRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("EXTRACT(YEAR FROM date) = ?", year).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindRangeByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]DailyRecord, error) {
	var rows []DailyRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date >= ? AND date <= ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindRangeByLeader(ctx context.Context, leaderID string, start, end time.Time) ([]DailyRecord, error) {
	var rows []DailyRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.id = daily_records.employee_id").
		Where("employees.leader_id = ?", leaderID).
		Where("daily_records.date >= ? AND daily_records.date <= ?",
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("daily_records.date ASC").
		Find(&rows).Error
	return rows, err
}
