package dbmodels

import (
	"fmt"

	"ats-backend/models"
)

type User struct {
	SoftDeleteModel
	FirstName string          `gorm:"type:varchar(255)"`
	LastName  string          `gorm:"type:varchar(255)"`
	UserName  string          `gorm:"type:varchar(50);uniqueIndex"` // auto-generated Recruiter##
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(255)"` // bcrypt hash
	Role      models.UserRole `gorm:"type:varchar(50)"`
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

type UserFilter struct {
	Search string `json:"search"`
}
