package controllers

import (
	"errors"
	"net/http"

	"saintjolie-backend/config"
	"saintjolie-backend/models"
	"saintjolie-backend/scheduling"
	"saintjolie-backend/services"
	"saintjolie-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// currentUserID extracts the authenticated user's ID from the request
// context. It writes the error response itself and returns false on failure.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	s, ok := userID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user identity in token")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user identity in token")
		return uuid.Nil, false
	}
	return id, true
}

// currentRole reads the role claim set by the auth middleware.
func currentRole(c *gin.Context) models.Role {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	s, ok := role.(string)
	if !ok {
		return ""
	}
	return models.Role(s)
}

// parseParamID parses a UUID path parameter, responding with 400 on failure.
func parseParamID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// findSalon loads the salon addressed by the :id parameter.
func findSalon(c *gin.Context) (models.Salon, bool) {
	salonID, ok := parseParamID(c, "id")
	if !ok {
		return models.Salon{}, false
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return models.Salon{}, false
	}
	return salon, true
}

// respondSchedulingError translates the booking and schedule-editing
// rejections into HTTP responses: conflicts with existing data map to 409,
// other business-rule rejections to 400, lookups to 404. Anything else is a
// database error.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSalonNotFound),
		errors.Is(err, services.ErrOfferingNotFound),
		errors.Is(err, services.ErrAppointmentNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, scheduling.ErrClientOverlap),
		errors.Is(err, scheduling.ErrNoStaffAvailable),
		errors.Is(err, scheduling.ErrNoStaffRegistered),
		errors.Is(err, scheduling.ErrOverlappingWindow),
		errors.Is(err, scheduling.ErrDuplicateSpecialDay):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, scheduling.ErrClosedDay),
		errors.Is(err, scheduling.ErrOutsideActivityPeriod),
		errors.Is(err, scheduling.ErrInThePast),
		errors.Is(err, scheduling.ErrOutsideOpeningHours),
		errors.Is(err, scheduling.ErrInvalidWindow):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
