package pipelineapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	dbmodels "ats-backend/models/db"
)

type CardData struct {
	Title string `json:"title"`
}

func (d CardData) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("card title is required")
	}
	return nil
}

type AddApplicantsRequest struct {
	ApplicantIDs []string `json:"applicant_ids"`
}

func (r AddApplicantsRequest) Validate() error {
	if len(r.ApplicantIDs) == 0 {
		return errors.New("no applicants selected")
	}
	return nil
}

type CardApplicantView struct {
	ApplicantID   string    `json:"applicant_id"`
	ApplicantName string    `json:"applicant_name"`
	Email         string    `json:"email,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

type CardView struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	AuthorID   string              `json:"author_id"`
	Applicants []CardApplicantView `json:"applicants"`
	CreatedAt  time.Time           `json:"created_at"`
}

func CardConvert(rec dbmodels.PipelineCard, links []dbmodels.PipelineCardApplicant) CardView {
	view := CardView{
		ID:         rec.ID,
		Title:      rec.Title,
		AuthorID:   rec.AuthorID,
		Applicants: make([]CardApplicantView, 0, len(links)),
		CreatedAt:  rec.CreatedAt,
	}
	for _, link := range links {
		item := CardApplicantView{
			ApplicantID: link.ApplicantID,
			AddedAt:     link.AddedAt,
		}
		if link.Applicant != nil {
			item.ApplicantName = link.Applicant.GetFullName()
			item.Email = link.Applicant.Email
		}
		view.Applicants = append(view.Applicants, item)
	}
	return view
}
