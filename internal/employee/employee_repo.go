package employee

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAllActive(ctx context.Context) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("registration ASC").
		Find(&rows).Error
	return rows, err
}
