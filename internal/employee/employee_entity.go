package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string     `gorm:"column:full_name;type:varchar(150);not null"`
	Registration string     `gorm:"column:registration;type:varchar(30);uniqueIndex;not null"`
	LeaderID     *uuid.UUID `gorm:"column:leader_id;type:uuid;index"`
	Active       bool       `gorm:"column:active;not null;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
