package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceType is a treatment in the general catalog, independent of any
// salon.
type ServiceType struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"uniqueIndex;not null"`

	gorm.Model
}

func (s *ServiceType) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// ServiceOffering is a service type as offered by one salon, with that
// salon's price and duration. One offering per (service type, salon) pair.
type ServiceOffering struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_offering_type_salon,priority:1"`
	SalonID       uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_offering_type_salon,priority:2"`

	Price    float64 `gorm:"type:decimal(10,2);not null"`
	Duration int     `gorm:"not null"` // in minutes
	Comment  string

	ServiceType ServiceType `gorm:"foreignKey:ServiceTypeID"`

	gorm.Model
}

func (o *ServiceOffering) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
