package userapimodels

import (
	"time"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type UserView struct {
	ID        string          `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	UserName  string          `json:"user_name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	RoleName  string          `json:"role_name"`
	CreatedAt time.Time       `json:"created_at"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		UserName:  rec.UserName,
		Email:     rec.Email,
		Role:      rec.Role,
		RoleName:  rec.Role.ToHuman(),
		CreatedAt: rec.CreatedAt,
	}
}
