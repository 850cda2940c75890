// controllers/schedule.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"saintjolie-backend/config"
	"saintjolie-backend/models"
	"saintjolie-backend/scheduling"
	"saintjolie-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WindowInput struct {
	Weekday    *int   `json:"weekday"` // 0=Monday .. 6=Sunday, regular windows only
	StartClock string `json:"start" binding:"required"`
	EndClock   string `json:"end" binding:"required"`
}

type SpecialDayInput struct {
	Date   string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Closed bool   `json:"closed"`
}

type VacationPeriodInput struct {
	DateStart string `json:"dateStart" binding:"required"`
	DateEnd   string `json:"dateEnd"` // defaults to dateStart
}

// --- Regular weekly windows ---

// GetRegularWindows lists a salon's weekly windows ordered by weekday and
// start time
func GetRegularWindows(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var windows []models.RegularWindow
	if err := config.DB.Where("salon_id = ?", salon.ID).
		Order("weekday, start_clock").Find(&windows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve windows")
		return
	}

	c.JSON(http.StatusOK, windows)
}

// CreateRegularWindow adds a weekly window, rejecting overlaps with the
// salon's existing windows for the same weekday
func CreateRegularWindow(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var input WindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Weekday == nil || *input.Weekday < 0 || *input.Weekday > 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "Weekday must be between 0 (Monday) and 6 (Sunday)")
		return
	}

	candidate, ok := parseWindowInput(c, input)
	if !ok {
		return
	}

	existing, err := regularRanges(salon.ID, *input.Weekday, uuid.Nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := scheduling.ValidateWindow(candidate, existing); err != nil {
		respondSchedulingError(c, err)
		return
	}

	window := models.RegularWindow{
		SalonID:    salon.ID,
		Weekday:    *input.Weekday,
		StartClock: scheduling.FormatClock(candidate.Start),
		EndClock:   scheduling.FormatClock(candidate.End),
	}
	if err := config.DB.Create(&window).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create window")
		return
	}

	c.JSON(http.StatusCreated, window)
}

// UpdateRegularWindow edits a weekly window, revalidating overlap against
// the other windows of its weekday
func UpdateRegularWindow(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}
	windowID, ok := parseParamID(c, "windowId")
	if !ok {
		return
	}

	var window models.RegularWindow
	if err := config.DB.Where("salon_id = ? AND id = ?", salon.ID, windowID).
		First(&window).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Window not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input WindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	weekday := window.Weekday
	if input.Weekday != nil {
		if *input.Weekday < 0 || *input.Weekday > 6 {
			utils.RespondWithError(c, http.StatusBadRequest, "Weekday must be between 0 (Monday) and 6 (Sunday)")
			return
		}
		weekday = *input.Weekday
	}

	candidate, ok := parseWindowInput(c, input)
	if !ok {
		return
	}

	// The edited window itself is left out of the overlap check.
	existing, err := regularRanges(salon.ID, weekday, window.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := scheduling.ValidateWindow(candidate, existing); err != nil {
		respondSchedulingError(c, err)
		return
	}

	window.Weekday = weekday
	window.StartClock = scheduling.FormatClock(candidate.Start)
	window.EndClock = scheduling.FormatClock(candidate.End)
	if err := config.DB.Save(&window).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update window")
		return
	}

	c.JSON(http.StatusOK, window)
}

// DeleteRegularWindow removes a weekly window
func DeleteRegularWindow(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}
	windowID, ok := parseParamID(c, "windowId")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salon.ID, windowID).
		Delete(&models.RegularWindow{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete window")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Window not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Window deleted successfully"})
}

// --- Special days ---

// GetSpecialDays lists a salon's overrides with consecutive closed days
// collapsed into periods
func GetSpecialDays(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var days []models.SpecialDay
	if err := config.DB.Preload("Windows", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_clock")
	}).Where("salon_id = ?", salon.ID).Order("date").Find(&days).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve special days")
		return
	}

	entries := make([]scheduling.SpecialDayEntry, 0, len(days))
	windowsByDay := make(map[uuid.UUID][]models.SpecialWindow, len(days))
	for _, day := range days {
		entries = append(entries, scheduling.SpecialDayEntry{ID: day.ID, Date: day.Date, Closed: day.Closed})
		windowsByDay[day.ID] = day.Windows
	}

	groups := scheduling.GroupClosedDays(entries)
	items := make([]gin.H, 0, len(groups))
	for _, g := range groups {
		item := gin.H{
			"closed":    g.Closed,
			"dateStart": utils.FormatDate(g.DateStart),
			"dateEnd":   utils.FormatDate(g.DateEnd),
			"ids":       g.IDs,
		}
		if !g.Closed {
			item["windows"] = windowsByDay[g.IDs[0]]
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// CreateSpecialDay adds an override for one date; one override per salon and
// date
func CreateSpecialDay(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var input SpecialDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	existing, err := specialDayDates(salon.ID, uuid.Nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := scheduling.ValidateSpecialDayDate(date, existing); err != nil {
		respondSchedulingError(c, err)
		return
	}

	day := models.SpecialDay{SalonID: salon.ID, Date: date, Closed: input.Closed}
	if err := config.DB.Create(&day).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create special day")
		return
	}

	c.JSON(http.StatusCreated, day)
}

// UpdateSpecialDay edits an override's date or closed flag
func UpdateSpecialDay(c *gin.Context) {
	day, ok := findSpecialDay(c)
	if !ok {
		return
	}

	var input SpecialDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	existing, err := specialDayDates(day.SalonID, day.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := scheduling.ValidateSpecialDayDate(date, existing); err != nil {
		respondSchedulingError(c, err)
		return
	}

	day.Date = date
	day.Closed = input.Closed
	if err := config.DB.Save(&day).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update special day")
		return
	}

	c.JSON(http.StatusOK, day)
}

// DeleteSpecialDay removes an override and its windows
func DeleteSpecialDay(c *gin.Context) {
	day, ok := findSpecialDay(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(&day).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete special day")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Special day deleted successfully"})
}

// CreateVacationPeriod creates one closed override per day over a date
// range, skipping dates that already have an override
func CreateVacationPeriod(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var input VacationPeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	start, err := utils.ParseDate(input.DateStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateStart, expected YYYY-MM-DD")
		return
	}
	end := start
	if input.DateEnd != "" {
		if end, err = utils.ParseDate(input.DateEnd); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateEnd, expected YYYY-MM-DD")
			return
		}
	}

	if end.Before(start) {
		utils.RespondWithError(c, http.StatusBadRequest, "dateEnd must not precede dateStart")
		return
	}
	if utils.DaysBetween(start, end) > 366 {
		utils.RespondWithError(c, http.StatusBadRequest, "Vacation period cannot exceed one year")
		return
	}

	created := 0
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			var existing models.SpecialDay
			err := tx.Where("salon_id = ? AND date = ?", salon.ID, date).First(&existing).Error
			if err == nil {
				continue // keep whatever override is already defined
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			day := models.SpecialDay{SalonID: salon.ID, Date: date, Closed: true}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vacation period")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Vacation period created",
		"daysCreated": created,
	})
}

// DeleteVacationPeriod removes the closed overrides of a date range, leaving
// non-closed overrides untouched
func DeleteVacationPeriod(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var input VacationPeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	start, err := utils.ParseDate(input.DateStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateStart, expected YYYY-MM-DD")
		return
	}
	end := start
	if input.DateEnd != "" {
		if end, err = utils.ParseDate(input.DateEnd); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateEnd, expected YYYY-MM-DD")
			return
		}
	}

	result := config.DB.Where("salon_id = ? AND closed = ? AND date BETWEEN ? AND ?",
		salon.ID, true, start, end).Delete(&models.SpecialDay{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vacation period")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Vacation period deleted",
		"daysDeleted": result.RowsAffected,
	})
}

// --- Special windows ---

// GetSpecialWindows lists the windows of one special day
func GetSpecialWindows(c *gin.Context) {
	day, ok := findSpecialDay(c)
	if !ok {
		return
	}

	var windows []models.SpecialWindow
	if err := config.DB.Where("special_day_id = ?", day.ID).
		Order("start_clock").Find(&windows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve windows")
		return
	}

	c.JSON(http.StatusOK, windows)
}

// CreateSpecialWindow adds a window to a special day, rejecting overlaps
// with the day's other windows
func CreateSpecialWindow(c *gin.Context) {
	day, ok := findSpecialDay(c)
	if !ok {
		return
	}

	var input WindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	candidate, ok := parseWindowInput(c, input)
	if !ok {
		return
	}

	existing, err := specialRanges(day.ID, uuid.Nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := scheduling.ValidateWindow(candidate, existing); err != nil {
		respondSchedulingError(c, err)
		return
	}

	window := models.SpecialWindow{
		SpecialDayID: day.ID,
		StartClock:   scheduling.FormatClock(candidate.Start),
		EndClock:     scheduling.FormatClock(candidate.End),
	}
	if err := config.DB.Create(&window).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create window")
		return
	}

	c.JSON(http.StatusCreated, window)
}

// UpdateSpecialWindow edits a special day's window
func UpdateSpecialWindow(c *gin.Context) {
	day, ok := findSpecialDay(c)
	if !ok {
		return
	}
	windowID, ok := parseParamID(c, "windowId")
	if !ok {
		return
	}

	var window models.SpecialWindow
	if err := config.DB.Where("special_day_id = ? AND id = ?", day.ID, windowID).
		First(&window).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Window not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input WindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	candidate, ok := parseWindowInput(c, input)
	if !ok {
		return
	}

	existing, err := specialRanges(day.ID, window.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := scheduling.ValidateWindow(candidate, existing); err != nil {
		respondSchedulingError(c, err)
		return
	}

	window.StartClock = scheduling.FormatClock(candidate.Start)
	window.EndClock = scheduling.FormatClock(candidate.End)
	if err := config.DB.Save(&window).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update window")
		return
	}

	c.JSON(http.StatusOK, window)
}

// DeleteSpecialWindow removes a special day's window
func DeleteSpecialWindow(c *gin.Context) {
	day, ok := findSpecialDay(c)
	if !ok {
		return
	}
	windowID, ok := parseParamID(c, "windowId")
	if !ok {
		return
	}

	result := config.DB.Where("special_day_id = ? AND id = ?", day.ID, windowID).
		Delete(&models.SpecialWindow{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete window")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Window not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Window deleted successfully"})
}

// --- helpers ---

func parseWindowInput(c *gin.Context, input WindowInput) (scheduling.TimeRange, bool) {
	start, err := scheduling.ParseClock(input.StartClock)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start time, expected HH:MM")
		return scheduling.TimeRange{}, false
	}
	end, err := scheduling.ParseClock(input.EndClock)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end time, expected HH:MM")
		return scheduling.TimeRange{}, false
	}
	return scheduling.TimeRange{Start: start, End: end}, true
}

// findSpecialDay loads the special day addressed by :id/:dayId, scoped to
// the salon.
func findSpecialDay(c *gin.Context) (models.SpecialDay, bool) {
	salon, ok := findSalon(c)
	if !ok {
		return models.SpecialDay{}, false
	}
	dayID, ok := parseParamID(c, "dayId")
	if !ok {
		return models.SpecialDay{}, false
	}

	var day models.SpecialDay
	if err := config.DB.Where("salon_id = ? AND id = ?", salon.ID, dayID).
		First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Special day not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return models.SpecialDay{}, false
	}
	return day, true
}

func specialDayDates(salonID uuid.UUID, excludeID uuid.UUID) ([]time.Time, error) {
	query := config.DB.Model(&models.SpecialDay{}).Where("salon_id = ?", salonID)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var dates []time.Time
	if err := query.Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func regularRanges(salonID uuid.UUID, weekday int, excludeID uuid.UUID) ([]scheduling.TimeRange, error) {
	query := config.DB.Where("salon_id = ? AND weekday = ?", salonID, weekday)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var windows []models.RegularWindow
	if err := query.Order("start_clock").Find(&windows).Error; err != nil {
		return nil, err
	}

	ranges := make([]scheduling.TimeRange, 0, len(windows))
	for _, w := range windows {
		start, err := scheduling.ParseClock(w.StartClock)
		if err != nil {
			return nil, err
		}
		end, err := scheduling.ParseClock(w.EndClock)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, scheduling.TimeRange{Start: start, End: end})
	}
	return ranges, nil
}

func specialRanges(dayID uuid.UUID, excludeID uuid.UUID) ([]scheduling.TimeRange, error) {
	query := config.DB.Where("special_day_id = ?", dayID)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var windows []models.SpecialWindow
	if err := query.Order("start_clock").Find(&windows).Error; err != nil {
		return nil, err
	}

	ranges := make([]scheduling.TimeRange, 0, len(windows))
	for _, w := range windows {
		start, err := scheduling.ParseClock(w.StartClock)
		if err != nil {
			return nil, err
		}
		end, err := scheduling.ParseClock(w.EndClock)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, scheduling.TimeRange{Start: start, End: end})
	}
	return ranges, nil
}
