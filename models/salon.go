package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salon carries the staff headcount used for capacity checks and an optional
// activity period. Dates outside the period are rejected when an appointment
// is validated, not at the data level.
type Salon struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Name       string    `gorm:"not null"`
	Address    string
	Phone      string
	Email      string
	StaffCount int `gorm:"default:0"`

	ActivityStart *time.Time `gorm:"type:date"`
	ActivityEnd   *time.Time `gorm:"type:date"`

	RegularWindows []RegularWindow   `gorm:"foreignKey:SalonID;constraint:OnDelete:CASCADE"`
	SpecialDays    []SpecialDay      `gorm:"foreignKey:SalonID;constraint:OnDelete:CASCADE"`
	Offerings      []ServiceOffering `gorm:"foreignKey:SalonID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
