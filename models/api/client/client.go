package clientapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	dbmodels "ats-backend/models/db"
)

type ClientData struct {
	Company       string `json:"company"`
	ContactPerson string `json:"contact_person"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
	Address       string `json:"address"`
	Website       string `json:"website"`
}

func (d ClientData) Validate() error {
	if strings.TrimSpace(d.Company) == "" {
		return errors.New("company name is required")
	}
	return nil
}

type ClientView struct {
	ID            string    `json:"id"`
	Company       string    `json:"company"`
	ContactPerson string    `json:"contact_person"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone"`
	Address       string    `json:"address"`
	Website       string    `json:"website"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ClientConvert(rec dbmodels.Client) ClientView {
	view := ClientView{
		ID:            rec.ID,
		Company:       rec.Company,
		ContactPerson: rec.ContactPerson,
		ContactEmail:  rec.ContactEmail,
		ContactPhone:  rec.ContactPhone,
		Address:       rec.Address,
		Website:       rec.Website,
		AuthorID:      rec.AuthorID,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
	}
	return view
}

type ClientListRequest struct {
	Filter dbmodels.ClientFilter `json:"filter"`
}
