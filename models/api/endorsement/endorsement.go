package endorsementapimodels

import (
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type EndorsementData struct {
	JobOrderID   string `json:"job_order_id"`
	ApplicantID  string `json:"applicant_id"`
	AskingSalary int64  `json:"asking_salary"`
	Profiler     string `json:"profiler"`
}

func (d EndorsementData) Validate() error {
	if d.JobOrderID == "" {
		return errors.New("job order is required")
	}
	if d.ApplicantID == "" {
		return errors.New("applicant is required")
	}
	return nil
}

type EndorsementUpdate struct {
	AskingSalary       *int64     `json:"asking_salary"`
	Profiler           *string    `json:"profiler"`
	ClientFeedback     *string    `json:"client_feedback"`
	CandidateStartDate *time.Time `json:"candidate_start_date"`
}

type StageUpdateRequest struct {
	Stage models.ApplicationStage `json:"stage"`
}

func (r StageUpdateRequest) Validate() error {
	if !r.Stage.IsValid() {
		return errors.New("unknown application stage")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown application status")
	}
	return nil
}

type EndorsementView struct {
	ID                 string                   `json:"id"`
	JobOrderID         string                   `json:"job_order_id"`
	JobOrderTitle      string                   `json:"job_order_title,omitempty"`
	ApplicantID        string                   `json:"applicant_id"`
	ApplicantName      string                   `json:"applicant_name,omitempty"`
	ClientID           string                   `json:"client_id"`
	ClientName         string                   `json:"client_name,omitempty"`
	AuthorID           string                   `json:"author_id"`
	Stage              models.ApplicationStage  `json:"stage"`
	StageName          string                   `json:"stage_name"`
	Status             models.ApplicationStatus `json:"status"`
	StatusName         string                   `json:"status_name"`
	AskingSalary       int64                    `json:"asking_salary"`
	Profiler           string                   `json:"profiler"`
	ClientFeedback     string                   `json:"client_feedback"`
	CandidateStartDate *time.Time               `json:"candidate_start_date"`
	CreatedAt          time.Time                `json:"created_at"`
}

func EndorsementConvert(rec dbmodels.JobOrderApplicant) EndorsementView {
	view := EndorsementView{
		ID:                 rec.ID,
		JobOrderID:         rec.JobOrderID,
		ApplicantID:        rec.ApplicantID,
		ClientID:           rec.ClientID,
		AuthorID:           rec.AuthorID,
		Stage:              rec.Stage,
		StageName:          rec.Stage.ToHuman(),
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		AskingSalary:       rec.AskingSalary,
		Profiler:           rec.Profiler,
		ClientFeedback:     rec.ClientFeedback,
		CandidateStartDate: rec.CandidateStartDate,
		CreatedAt:          rec.CreatedAt,
	}
	if rec.JobOrder != nil {
		view.JobOrderTitle = rec.JobOrder.Title
	}
	if rec.Applicant != nil {
		view.ApplicantName = rec.Applicant.GetFullName()
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.Company
	}
	return view
}

type EndorsementListRequest struct {
	Filter dbmodels.EndorsementFilter `json:"filter"`
}
