// services/booking_service.go
package services

import (
	"errors"
	"time"

	"saintjolie-backend/models"
	"saintjolie-backend/scheduling"
	"saintjolie-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSalonNotFound       = errors.New("salon not found")
	ErrOfferingNotFound    = errors.New("service offering not found for this salon")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// BookingRequest is a proposed appointment, before validation.
type BookingRequest struct {
	ClientID   uuid.UUID
	SalonID    uuid.UUID
	OfferingID uuid.UUID
	Date       time.Time
	StartClock string
}

// BookingService runs the load-validate-write sequence for appointments.
// Each call locks the salon row for the duration of its transaction, so two
// concurrent bookings for the same salon cannot both validate against a
// stale appointment set and overshoot the staff capacity.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Book validates the request and persists a new planned appointment. On a
// validation failure nothing is written and the scheduling error is returned
// as-is for the caller to translate.
func (s *BookingService) Book(req BookingRequest) (*models.Appointment, error) {
	start, err := scheduling.ParseClock(req.StartClock)
	if err != nil {
		return nil, err
	}
	date := utils.BeginningOfDay(req.Date)

	var appt *models.Appointment
	err = s.db.Transaction(func(tx *gorm.DB) error {
		salon, offering, err := s.lockSalonAndOffering(tx, req.SalonID, req.OfferingID)
		if err != nil {
			return err
		}

		existing, err := s.loadBookings(tx, req.ClientID, req.SalonID, date)
		if err != nil {
			return err
		}

		planner := scheduling.NewAppointmentPlanner(NewGormScheduleStore(tx))
		slot, err := planner.Plan(salonInfo(salon), req.ClientID, date, start, offering.Duration, existing, nil)
		if err != nil {
			return err
		}

		appt = &models.Appointment{
			ClientID:   req.ClientID,
			SalonID:    req.SalonID,
			OfferingID: offering.ID,
			Date:       date,
			StartClock: scheduling.FormatClock(slot.Start),
			EndClock:   scheduling.FormatClock(slot.End),
			Status:     models.StatusPlanned,
		}
		return tx.Create(appt).Error
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

// Reschedule re-runs the exact validation path for an existing appointment,
// excluding the appointment from the conflict checks so an unchanged slot
// never collides with itself. The appointment keeps its salon and status.
func (s *BookingService) Reschedule(appointmentID uuid.UUID, req BookingRequest) (*models.Appointment, error) {
	start, err := scheduling.ParseClock(req.StartClock)
	if err != nil {
		return nil, err
	}
	date := utils.BeginningOfDay(req.Date)

	var appt models.Appointment
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appt, "id = ?", appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}

		salon, offering, err := s.lockSalonAndOffering(tx, appt.SalonID, req.OfferingID)
		if err != nil {
			return err
		}

		existing, err := s.loadBookings(tx, req.ClientID, appt.SalonID, date)
		if err != nil {
			return err
		}

		planner := scheduling.NewAppointmentPlanner(NewGormScheduleStore(tx))
		slot, err := planner.Plan(salonInfo(salon), req.ClientID, date, start, offering.Duration, existing, &appt.ID)
		if err != nil {
			return err
		}

		appt.ClientID = req.ClientID
		appt.OfferingID = offering.ID
		appt.Date = date
		appt.StartClock = scheduling.FormatClock(slot.Start)
		appt.EndClock = scheduling.FormatClock(slot.End)
		return tx.Save(&appt).Error
	})
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// lockSalonAndOffering takes the per-salon write lock and resolves the
// offering within the same salon.
func (s *BookingService) lockSalonAndOffering(tx *gorm.DB, salonID, offeringID uuid.UUID) (models.Salon, models.ServiceOffering, error) {
	var salon models.Salon
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salon, models.ServiceOffering{}, ErrSalonNotFound
		}
		return salon, models.ServiceOffering{}, err
	}

	var offering models.ServiceOffering
	if err := tx.First(&offering, "id = ? AND salon_id = ?", offeringID, salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salon, offering, ErrOfferingNotFound
		}
		return salon, offering, err
	}
	return salon, offering, nil
}

// loadBookings fetches the date's appointments the planner needs: the
// client's bookings at any salon plus the salon's bookings, in one query so
// no row is counted twice.
func (s *BookingService) loadBookings(tx *gorm.DB, clientID, salonID uuid.UUID, date time.Time) ([]scheduling.Booking, error) {
	var appts []models.Appointment
	if err := tx.Where("date = ? AND (client_id = ? OR salon_id = ?)", date, clientID, salonID).
		Find(&appts).Error; err != nil {
		return nil, err
	}

	bookings := make([]scheduling.Booking, 0, len(appts))
	for _, a := range appts {
		slot, err := clockRange(a.StartClock, a.EndClock)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, scheduling.Booking{
			ID:       a.ID,
			ClientID: a.ClientID,
			SalonID:  a.SalonID,
			Slot:     slot,
		})
	}
	return bookings, nil
}

func salonInfo(salon models.Salon) scheduling.SalonInfo {
	return scheduling.SalonInfo{
		ID:            salon.ID,
		StaffCount:    salon.StaffCount,
		ActivityStart: salon.ActivityStart,
		ActivityEnd:   salon.ActivityEnd,
	}
}
