// controllers/user.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"saintjolie-backend/config"
	"saintjolie-backend/models"
	"saintjolie-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateUserInput struct {
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=8"`
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Phone     *string     `json:"phone"`
	BirthDate *time.Time  `json:"birthDate"`
	Role      models.Role `json:"role" binding:"required"`
}

type UpdateUserInput struct {
	Email     *string      `json:"email"`
	FirstName *string      `json:"firstName"`
	LastName  *string      `json:"lastName"`
	Phone     *string      `json:"phone"`
	BirthDate *time.Time   `json:"birthDate"`
	Role      *models.Role `json:"role"`
}

type SetPasswordInput struct {
	Password string `json:"password" binding:"required,min=8"`
}

// GetUsers lists all accounts, ordered by name
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("last_name, first_name").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser creates an account with any role
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidRole(input.Role) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown role")
		return
	}
	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var existing models.User
	result := config.DB.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Email:     email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
		Role:      input.Role,
		IsActive:  true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser updates an account's profile fields
func UpdateUser(c *gin.Context) {
	userID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Email != nil {
		user.Email = strings.TrimSpace(strings.ToLower(*input.Email))
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		user.Phone = input.Phone
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}
	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown role")
			return
		}
		user.Role = *input.Role
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account
func DeleteUser(c *gin.Context) {
	userID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ToggleUserActive flips the account's active flag
func ToggleUserActive(c *gin.Context) {
	userID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&user).Update("is_active", !user.IsActive).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "isActive": !user.IsActive})
}

// SetUserPassword replaces an account's password
func SetUserPassword(c *gin.Context) {
	userID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var input SetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	result := config.DB.Model(&models.User{}).Where("id = ?", userID).Update("password", hashed)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
