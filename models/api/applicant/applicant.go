package applicantapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
)

type ApplicantData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (d ApplicantData) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(d.LastName) == "" {
		return errors.New("last name is required")
	}
	if d.Email != "" && !strings.Contains(d.Email, "@") {
		return errors.New("email is invalid")
	}
	return nil
}

type ApplicantView struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	ResumeKey  string    `json:"resume_key,omitempty"`
	ResumeURL  string    `json:"resume_url,omitempty"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ApplicantConvert(rec dbmodels.Applicant) ApplicantView {
	view := ApplicantView{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Address:   rec.Address,
		ResumeKey: rec.ResumeKey,
		AuthorID:  rec.AuthorID,
		CreatedAt: rec.CreatedAt,
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
	}
	return view
}

type ApplicantListRequest struct {
	apimodels.Pagination
	Filter dbmodels.ApplicantFilter `json:"filter"`
}
