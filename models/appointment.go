package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPlanned   AppointmentStatus = "planned"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	return s == StatusPlanned || s == StatusCompleted || s == StatusCancelled
}

// Appointment is a validated booking. EndClock is derived once, at creation
// or edit time, as start + service duration + the fixed buffer; it is never
// recomputed on read. Status changes go through a separate path that skips
// interval revalidation.
type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID   uuid.UUID `gorm:"type:uuid;index;not null"`
	SalonID    uuid.UUID `gorm:"type:uuid;index;not null"`
	OfferingID uuid.UUID `gorm:"type:uuid;not null"`

	Date       time.Time         `gorm:"type:date;index;not null"`
	StartClock string            `gorm:"type:varchar(5);not null"`
	EndClock   string            `gorm:"type:varchar(5);not null"`
	Status     AppointmentStatus `gorm:"type:varchar(20);not null;default:'planned'"`

	Client   User            `gorm:"foreignKey:ClientID"`
	Salon    Salon           `gorm:"foreignKey:SalonID"`
	Offering ServiceOffering `gorm:"foreignKey:OfferingID"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
