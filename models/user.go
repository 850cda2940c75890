package models

import (
	"time"

	"saintjolie-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Authorization decisions compare
// against these constants, never against free-form strings.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
	RoleStudent      Role = "student"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleClient || r == RoleProfessional || r == RoleStudent
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Phone     *string   `gorm:"uniqueIndex"`
	BirthDate *time.Time

	Role      Role `gorm:"type:varchar(20);not null;default:'client'"`
	IsActive  bool `gorm:"default:true"`
	LastLogin *time.Time

	gorm.Model
}

func (u *User) IsClient() bool       { return u.Role == RoleClient }
func (u *User) IsProfessional() bool { return u.Role == RoleProfessional }
func (u *User) IsStudent() bool      { return u.Role == RoleStudent }

// CanManageAppointments reports whether the user may book and edit
// appointments on behalf of other clients.
func (u *User) CanManageAppointments() bool {
	return u.IsProfessional() || u.IsStudent()
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
