package dbmodels

import (
	"time"

	"ats-backend/models"
)

// JobOrderApplicant is the application record created when an applicant is
// endorsed to a job order. The client reference is denormalized from the job
// order at endorsement time.
type JobOrderApplicant struct {
	BaseModel
	JobOrderID         string     `gorm:"type:varchar(36);uniqueIndex:idx_endorsement"`
	JobOrder           *JobOrder  `gorm:"foreignKey:JobOrderID"`
	ApplicantID        string     `gorm:"type:varchar(36);uniqueIndex:idx_endorsement"`
	Applicant          *Applicant `gorm:"foreignKey:ApplicantID"`
	ClientID           string     `gorm:"type:varchar(36)"`
	Client             *Client    `gorm:"foreignKey:ClientID"`
	AuthorID           string     `gorm:"type:varchar(36)"`
	Author             *User      `gorm:"foreignKey:AuthorID"`
	Stage              models.ApplicationStage  `gorm:"type:varchar(50)"`
	Status             models.ApplicationStatus `gorm:"type:varchar(20)"`
	AskingSalary       int64
	Profiler           string // free-text interview/assessment notes
	ClientFeedback     string
	CandidateStartDate *time.Time
}

type EndorsementFilter struct {
	JobOrderID  string `json:"job_order_id"`
	ApplicantID string `json:"applicant_id"`
	Search      string `json:"search"`
}
