// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"

	"saintjolie-backend/config"
	"saintjolie-backend/models"
	"saintjolie-backend/services"
	"saintjolie-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookAppointmentInput struct {
	ClientID   *string `json:"clientId"` // staff only; clients always book for themselves
	OfferingID string  `json:"offeringId" binding:"required"`
	Date       string  `json:"date" binding:"required"` // "YYYY-MM-DD"
	StartClock string  `json:"start" binding:"required"`
}

type UpdateStatusInput struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// BookAppointment validates and creates an appointment at the salon. A
// professional or student may book on behalf of any client; everyone else
// books for themselves.
func BookAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	salonID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	clientID := userID
	if input.ClientID != nil && *input.ClientID != "" {
		role := currentRole(c)
		if role != models.RoleProfessional && role != models.RoleStudent {
			utils.RespondWithError(c, http.StatusForbidden, "Only staff may book for another client")
			return
		}
		parsed, err := uuid.Parse(*input.ClientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
			return
		}
		var client models.User
		if err := config.DB.First(&client, "id = ?", parsed).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		clientID = parsed
	}

	offeringID, err := uuid.Parse(input.OfferingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid offering ID format")
		return
	}
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	booking := services.NewBookingService(config.DB)
	appt, err := booking.Book(services.BookingRequest{
		ClientID:   clientID,
		SalonID:    salonID,
		OfferingID: offeringID,
		Date:       date,
		StartClock: input.StartClock,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointment reschedules an appointment through the same validation
// path used at creation; the record being edited is not checked against
// itself.
func UpdateAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	appt, ok := findAppointment(c)
	if !ok {
		return
	}

	role := currentRole(c)
	if role != models.RoleProfessional && appt.ClientID != userID {
		utils.RespondWithError(c, http.StatusForbidden, "You may only edit your own appointments")
		return
	}

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	clientID := appt.ClientID
	if input.ClientID != nil && *input.ClientID != "" {
		if role != models.RoleProfessional {
			utils.RespondWithError(c, http.StatusForbidden, "Only a professional may reassign an appointment")
			return
		}
		parsed, err := uuid.Parse(*input.ClientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
			return
		}
		clientID = parsed
	}

	offeringID, err := uuid.Parse(input.OfferingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid offering ID format")
		return
	}
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	booking := services.NewBookingService(config.DB)
	updated, err := booking.Reschedule(appt.ID, services.BookingRequest{
		ClientID:   clientID,
		SalonID:    appt.SalonID,
		OfferingID: offeringID,
		Date:       date,
		StartClock: input.StartClock,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAppointment removes an appointment; clients may only delete their
// own
func DeleteAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	appt, ok := findAppointment(c)
	if !ok {
		return
	}

	if currentRole(c) != models.RoleProfessional && appt.ClientID != userID {
		utils.RespondWithError(c, http.StatusForbidden, "You may only delete your own appointments")
		return
	}

	if err := config.DB.Delete(&appt).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// Status changes deliberately skip the interval revalidation.
func UpdateAppointmentStatus(c *gin.Context) {
	appt, ok := findAppointment(c)
	if !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
		return
	}

	if err := config.DB.Model(&appt).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": appt.ID, "status": input.Status})
}

// GetMyAppointments lists the authenticated user's appointments
func GetMyAppointments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var appts []models.Appointment
	if err := config.DB.Preload("Salon").Preload("Offering.ServiceType").
		Where("client_id = ?", userID).
		Order("date, start_clock").Find(&appts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appts)
}

// GetAllAppointments lists every appointment, for staff
func GetAllAppointments(c *gin.Context) {
	var appts []models.Appointment
	if err := config.DB.Preload("Client").Preload("Salon").Preload("Offering.ServiceType").
		Order("date, start_clock").Find(&appts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appts)
}

func findAppointment(c *gin.Context) (models.Appointment, bool) {
	apptID, ok := parseParamID(c, "id")
	if !ok {
		return models.Appointment{}, false
	}

	var appt models.Appointment
	if err := config.DB.First(&appt, "id = ?", apptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return models.Appointment{}, false
	}
	return appt, true
}
