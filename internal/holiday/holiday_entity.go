package holiday

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeNational  = "national"
	TypeState     = "state"
	TypeMunicipal = "municipal"
	TypeCompany   = "company"
)

type Holiday struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Date      time.Time `gorm:"column:date;type:date;not null;index"`
	Name      string    `gorm:"column:name;type:varchar(150);not null"`
	Type      string    `gorm:"column:type;type:varchar(20);not null"`
	Recurring bool      `gorm:"column:recurring;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}

// Matches reports whether the holiday falls on the given date. Recurring
// holidays match on month and day in any year; the year stored on the row is
// only the year it was registered.
func (h Holiday) Matches(date time.Time) bool {
	if h.Recurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() &&
		h.Date.Month() == date.Month() &&
		h.Date.Day() == date.Day()
}
