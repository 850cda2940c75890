// services/completion_service.go
package services

import (
	"log"
	"time"

	"saintjolie-backend/models"
	"saintjolie-backend/scheduling"
	"saintjolie-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CompletionService marks planned appointments whose slot has fully elapsed
// as completed, so staff don't have to close them out one by one.
type CompletionService struct {
	db *gorm.DB
}

func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{db: db}
}

func (s *CompletionService) StartScheduler() {
	c := cron.New()

	// Run every night shortly after midnight
	c.AddFunc("15 0 * * *", func() {
		if err := s.CompleteElapsed(time.Now()); err != nil {
			log.Printf("completion sweep failed: %v", err)
		}
	})

	c.Start()
	log.Println("Appointment completion scheduler started")
}

// CompleteElapsed flips every planned appointment that ended before now to
// completed. Cancelled appointments are left alone.
func (s *CompletionService) CompleteElapsed(now time.Time) error {
	today := utils.BeginningOfDay(now)
	nowClock := scheduling.FormatClock(now.Hour()*60 + now.Minute())

	result := s.db.Model(&models.Appointment{}).
		Where("status = ? AND (date < ? OR (date = ? AND end_clock <= ?))",
			models.StatusPlanned, today, today, nowClock).
		Update("status", models.StatusCompleted)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d elapsed appointments as completed", result.RowsAffected)
	}
	return nil
}
