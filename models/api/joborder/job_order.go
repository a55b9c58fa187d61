package joborderapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"
)

type JobOrderData struct {
	Title        string                  `json:"title"`
	ClientID     string                  `json:"client_id"`
	Status       models.JobOrderStatus   `json:"status"`
	Priority     models.JobOrderPriority `json:"priority"`
	SourcingTags []string                `json:"sourcing_tags"`
}

func (d JobOrderData) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("title is required")
	}
	if d.ClientID == "" {
		return errors.New("client is required")
	}
	if !d.Status.IsValid() {
		return errors.New("unknown job order status")
	}
	if !d.Priority.IsValid() {
		return errors.New("unknown job order priority")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.JobOrderStatus `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown job order status")
	}
	return nil
}

type JobOrderView struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	ClientID     string                  `json:"client_id"`
	ClientName   string                  `json:"client_name,omitempty"`
	AuthorID     string                  `json:"author_id"`
	AuthorName   string                  `json:"author_name,omitempty"`
	Status       models.JobOrderStatus   `json:"status"`
	StatusName   string                  `json:"status_name"`
	Priority     models.JobOrderPriority `json:"priority"`
	Archived     bool                    `json:"archived"`
	JobDescKey   string                  `json:"job_desc_key,omitempty"`
	JobDescURL   string                  `json:"job_desc_url,omitempty"`
	SourcingTags []string                `json:"sourcing_tags,omitempty"`
	Favorite     bool                    `json:"favorite"`
	CreatedAt    time.Time               `json:"created_at"`
}

func JobOrderConvert(rec dbmodels.JobOrderExt) JobOrderView {
	view := JobOrderView{
		ID:           rec.ID,
		Title:        rec.Title,
		ClientID:     rec.ClientID,
		AuthorID:     rec.AuthorID,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		Priority:     rec.Priority,
		Archived:     rec.Archived,
		JobDescKey:   rec.JobDescKey,
		SourcingTags: rec.SourcingTags,
		Favorite:     rec.Favorite,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.Company
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
	}
	return view
}

type JobOrderListRequest struct {
	apimodels.Pagination
	Filter dbmodels.JobOrderFilter `json:"filter"`
}

// BoardCard is one job order card on the priority board.
type BoardCard struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Status         models.JobOrderStatus `json:"status"`
	StatusName     string                `json:"status_name"`
	CandidateCount int64                 `json:"candidate_count"`
	AgeDays        int                   `json:"age_days"`
	Favorite       bool                  `json:"favorite"`
	CreatedAt      time.Time             `json:"created_at"`
}

// BoardLane is a fixed priority lane (High/Mid/Low) of the board.
type BoardLane struct {
	Priority models.JobOrderPriority `json:"priority"`
	Name     string                  `json:"name"`
	Cards    []BoardCard             `json:"cards"`
}

type BoardView struct {
	Lanes []BoardLane `json:"lanes"`
}
