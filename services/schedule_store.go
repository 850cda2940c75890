// services/schedule_store.go
package services

import (
	"errors"
	"time"

	"saintjolie-backend/models"
	"saintjolie-backend/scheduling"
	"saintjolie-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormScheduleStore is the database-backed schedule projection consumed by
// the scheduling package. It only reads.
type GormScheduleStore struct {
	db *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{db: db}
}

func (s *GormScheduleStore) RegularWindows(salonID uuid.UUID, day scheduling.Weekday) ([]scheduling.TimeRange, error) {
	var windows []models.RegularWindow
	if err := s.db.Where("salon_id = ? AND weekday = ?", salonID, int(day)).
		Order("start_clock").Find(&windows).Error; err != nil {
		return nil, err
	}

	ranges := make([]scheduling.TimeRange, 0, len(windows))
	for _, w := range windows {
		r, err := clockRange(w.StartClock, w.EndClock)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func (s *GormScheduleStore) SpecialDay(salonID uuid.UUID, date time.Time) (*scheduling.SpecialDayInfo, error) {
	var day models.SpecialDay
	err := s.db.Where("salon_id = ? AND date = ?", salonID, utils.BeginningOfDay(date)).First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No override for this date; the regular windows apply.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &scheduling.SpecialDayInfo{ID: day.ID, Closed: day.Closed}, nil
}

func (s *GormScheduleStore) SpecialWindows(specialDayID uuid.UUID) ([]scheduling.TimeRange, error) {
	var windows []models.SpecialWindow
	if err := s.db.Where("special_day_id = ?", specialDayID).
		Order("start_clock").Find(&windows).Error; err != nil {
		return nil, err
	}

	ranges := make([]scheduling.TimeRange, 0, len(windows))
	for _, w := range windows {
		r, err := clockRange(w.StartClock, w.EndClock)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func clockRange(startClock, endClock string) (scheduling.TimeRange, error) {
	start, err := scheduling.ParseClock(startClock)
	if err != nil {
		return scheduling.TimeRange{}, err
	}
	end, err := scheduling.ParseClock(endClock)
	if err != nil {
		return scheduling.TimeRange{}, err
	}
	return scheduling.TimeRange{Start: start, End: end}, nil
}
