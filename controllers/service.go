// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"saintjolie-backend/config"
	"saintjolie-backend/models"
	"saintjolie-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateServiceTypeInput struct {
	Name string `json:"name" binding:"required"`
}

type CreateOfferingInput struct {
	ServiceTypeID string  `json:"serviceTypeId" binding:"required"`
	Price         float64 `json:"price" binding:"required,min=0"`
	Duration      int     `json:"duration" binding:"required,min=1"` // in minutes
	Comment       string  `json:"comment"`
}

type UpdateOfferingInput struct {
	Price    *float64 `json:"price"`
	Duration *int     `json:"duration"`
	Comment  *string  `json:"comment"`
}

// GetServiceTypes lists the general service catalog
func GetServiceTypes(c *gin.Context) {
	var types []models.ServiceType
	if err := config.DB.Order("name").Find(&types).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateServiceType adds a treatment to the general catalog
func CreateServiceType(c *gin.Context) {
	var input CreateServiceTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.ServiceType
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Service type already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	serviceType := models.ServiceType{Name: input.Name}
	if err := config.DB.Create(&serviceType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service type")
		return
	}

	c.JSON(http.StatusCreated, serviceType)
}

// UpdateServiceType renames a catalog entry
func UpdateServiceType(c *gin.Context) {
	typeID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var input CreateServiceTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := config.DB.Model(&models.ServiceType{}).Where("id = ?", typeID).Update("name", input.Name)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service type")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service type not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service type updated"})
}

// DeleteServiceType removes a catalog entry
func DeleteServiceType(c *gin.Context) {
	typeID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.ServiceType{}, "id = ?", typeID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service type")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service type not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service type deleted successfully"})
}

// GetOfferings lists a salon's offerings with their catalog entries
func GetOfferings(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var offerings []models.ServiceOffering
	if err := config.DB.Preload("ServiceType").Where("salon_id = ?", salon.ID).
		Find(&offerings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offerings")
		return
	}

	c.JSON(http.StatusOK, offerings)
}

// CreateOffering attaches a catalog service to a salon with its price and
// duration. One offering per (service type, salon) pair.
func CreateOffering(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}

	var input CreateOfferingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	typeID, err := uuid.Parse(input.ServiceTypeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service type ID format")
		return
	}

	var serviceType models.ServiceType
	if err := config.DB.First(&serviceType, "id = ?", typeID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service type not found")
		return
	}

	var existing models.ServiceOffering
	if err := config.DB.Where("salon_id = ? AND service_type_id = ?", salon.ID, typeID).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "This salon already offers this service")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	offering := models.ServiceOffering{
		ServiceTypeID: typeID,
		SalonID:       salon.ID,
		Price:         input.Price,
		Duration:      input.Duration,
		Comment:       input.Comment,
	}
	if err := config.DB.Create(&offering).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create offering")
		return
	}

	offering.ServiceType = serviceType
	c.JSON(http.StatusCreated, offering)
}

// UpdateOffering changes a salon's price, duration or comment for a service
func UpdateOffering(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}
	offeringID, ok := parseParamID(c, "offeringId")
	if !ok {
		return
	}

	var input UpdateOfferingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var offering models.ServiceOffering
	if err := config.DB.Where("salon_id = ? AND id = ?", salon.ID, offeringID).
		First(&offering).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Offering not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Price != nil {
		offering.Price = *input.Price
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Duration must be positive")
			return
		}
		offering.Duration = *input.Duration
	}
	if input.Comment != nil {
		offering.Comment = *input.Comment
	}

	if err := config.DB.Save(&offering).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update offering")
		return
	}

	c.JSON(http.StatusOK, offering)
}

// DeleteOffering removes a service from a salon
func DeleteOffering(c *gin.Context) {
	salon, ok := findSalon(c)
	if !ok {
		return
	}
	offeringID, ok := parseParamID(c, "offeringId")
	if !ok {
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salon.ID, offeringID).
		Delete(&models.ServiceOffering{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete offering")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Offering not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offering deleted successfully"})
}
