package syslogapimodels

import (
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
)

type AccessRequest struct {
	Password string `json:"password"`
}

func (r AccessRequest) Validate() error {
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type LogView struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"user_id,omitempty"`
	UserName   string                 `json:"user_name"`
	Action     models.LogAction       `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Changes    dbmodels.EntityChanges `json:"changes"`
	CreatedAt  time.Time              `json:"created_at"`
}

func LogConvert(rec dbmodels.SystemLog) LogView {
	view := LogView{
		ID:         rec.ID,
		UserName:   rec.UserName,
		Action:     rec.Action,
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.UserID != nil {
		view.UserID = *rec.UserID
	}
	return view
}

type LogListRequest struct {
	apimodels.Pagination
	Filter dbmodels.SystemLogFilter `json:"filter"`
}
