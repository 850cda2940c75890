// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"saintjolie-backend/config"
	"saintjolie-backend/models"
	"saintjolie-backend/scheduling"
	"saintjolie-backend/services"
	"saintjolie-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateSalonInput struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	StaffCount    int     `json:"staffCount" binding:"min=0"`
	ActivityStart *string `json:"activityStart"` // "YYYY-MM-DD"
	ActivityEnd   *string `json:"activityEnd"`
}

type UpdateSalonInput struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	StaffCount    *int    `json:"staffCount"`
	ActivityStart *string `json:"activityStart"`
	ActivityEnd   *string `json:"activityEnd"`
}

// GetSalons lists all salons
func GetSalons(c *gin.Context) {
	var salons []models.Salon
	if err := config.DB.Order("name").Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}
	c.JSON(http.StatusOK, salons)
}

// GetSalon retrieves one salon with its service offerings
func GetSalon(c *gin.Context) {
	salonID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var salon models.Salon
	if err := config.DB.Preload("Offerings.ServiceType").First(&salon, "id = ?", salonID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// CreateSalon creates a new salon
func CreateSalon(c *gin.Context) {
	var input CreateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	salon := models.Salon{
		Name:       input.Name,
		Address:    input.Address,
		Phone:      input.Phone,
		Email:      input.Email,
		StaffCount: input.StaffCount,
	}

	var ok bool
	if salon.ActivityStart, ok = parseOptionalDate(c, input.ActivityStart); !ok {
		return
	}
	if salon.ActivityEnd, ok = parseOptionalDate(c, input.ActivityEnd); !ok {
		return
	}

	if err := config.DB.Create(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		return
	}

	c.JSON(http.StatusCreated, salon)
}

// UpdateSalon updates an existing salon
func UpdateSalon(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.Phone != nil {
		salon.Phone = *input.Phone
	}
	if input.Email != nil {
		salon.Email = *input.Email
	}
	if input.StaffCount != nil {
		if *input.StaffCount < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Staff count cannot be negative")
			return
		}
		salon.StaffCount = *input.StaffCount
	}
	if input.ActivityStart != nil {
		if salon.ActivityStart, ok = parseOptionalDate(c, input.ActivityStart); !ok {
			return
		}
	}
	if input.ActivityEnd != nil {
		if salon.ActivityEnd, ok = parseOptionalDate(c, input.ActivityEnd); !ok {
			return
		}
	}

	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// DeleteSalon removes a salon together with its windows, special days and
// offerings
func DeleteSalon(c *gin.Context) {
	salonID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Salon{}, "id = ?", salonID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete salon")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Salon deleted successfully"})
}

// GetAvailability returns the effective opening windows of a salon for one
// date, override precedence already applied. A closed day is a regular
// response, not an error.
func GetAvailability(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}

	resolver := scheduling.NewAvailabilityResolver(services.NewGormScheduleStore(config.DB))
	windows, err := resolver.EffectiveWindows(salon.ID, date)
	if err != nil && !errors.Is(err, scheduling.ErrClosedDay) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	items := make([]gin.H, 0, len(windows))
	for _, w := range windows {
		items = append(items, gin.H{
			"start": scheduling.FormatClock(w.Start),
			"end":   scheduling.FormatClock(w.End),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    utils.FormatDate(date),
		"weekday": scheduling.WeekdayOf(date).String(),
		"closed":  len(windows) == 0,
		"windows": items,
	})
}

// GetPastAppointments lists a salon's appointments before today, most recent
// first
func GetPastAppointments(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	today := utils.BeginningOfDay(time.Now())

	var appts []models.Appointment
	if err := config.DB.Preload("Client").Preload("Offering.ServiceType").
		Where("salon_id = ? AND date < ?", salon.ID, today).
		Order("date DESC, start_clock DESC").Find(&appts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appts)
}

func parseOptionalDate(c *gin.Context, value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	date, err := utils.ParseDate(*value)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return nil, false
	}
	return &date, true
}
