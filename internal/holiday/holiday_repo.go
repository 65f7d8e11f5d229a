package holiday

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	FindByYear(ctx context.Context, year int) ([]Holiday, error)
	FindApplicable(ctx context.Context, start, end time.Time) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("recurring = ? OR EXTRACT(YEAR FROM date) = ?", true, year).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// FindApplicable returns every holiday that can fall inside [start, end]:
// non-recurring rows dated in the window plus all recurring rows.
func (r *repository) FindApplicable(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("recurring = ? OR (date >= ? AND date <= ?)",
			true, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
