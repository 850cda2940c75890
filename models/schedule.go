package models

import (
	"time"

	"saintjolie-backend/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekday is the seeded table of the seven named days, Monday=0 through
// Sunday=6. Exactly one row per number.
type Weekday struct {
	Number int    `gorm:"primary_key;autoIncrement:false"`
	Name   string `gorm:"uniqueIndex;not null"`
}

// SeedWeekdays inserts the seven weekdays if they are not present yet.
func SeedWeekdays(db *gorm.DB) error {
	for day := scheduling.Monday; day <= scheduling.Sunday; day++ {
		weekday := Weekday{Number: int(day), Name: day.String()}
		if err := db.FirstOrCreate(&weekday, Weekday{Number: int(day)}).Error; err != nil {
			return err
		}
	}
	return nil
}

// RegularWindow is one weekly opening interval of a salon. Windows for the
// same salon and weekday must not overlap; the schedule controllers enforce
// this through the scheduling package before writing.
type RegularWindow struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`
	Weekday int       `gorm:"not null;index"`

	StartClock string `gorm:"type:varchar(5);not null"` // "HH:MM"
	EndClock   string `gorm:"type:varchar(5);not null"`

	gorm.Model
}

func (w *RegularWindow) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}

// SpecialDay overrides the regular windows of one salon for one date. When
// Closed is set no appointments are taken; otherwise the day's windows come
// exclusively from its SpecialWindow rows.
type SpecialDay struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_special_day_salon_date,priority:1"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:idx_special_day_salon_date,priority:2"`
	Closed  bool      `gorm:"default:false"`

	Windows []SpecialWindow `gorm:"foreignKey:SpecialDayID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

func (d *SpecialDay) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

// SpecialWindow is one opening interval of a special day. Only meaningful
// when the parent day is not closed.
type SpecialWindow struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	SpecialDayID uuid.UUID `gorm:"type:uuid;index;not null"`

	StartClock string `gorm:"type:varchar(5);not null"`
	EndClock   string `gorm:"type:varchar(5);not null"`

	gorm.Model
}

func (w *SpecialWindow) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}
