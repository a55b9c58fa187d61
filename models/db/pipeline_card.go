package dbmodels

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Deleting a card cascades to its links, never to the applicants behind them.
func (p *PipelineCard) AfterDelete(tx *gorm.DB) (err error) {
	if p.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("pipeline_card_id = ?", p.ID).Delete(&PipelineCardApplicant{})
	return
}

// PipelineCard is a free-form named bucket of candidates, independent of any
// job order.
type PipelineCard struct {
	BaseModel
	AuthorID string `gorm:"type:varchar(36);index"`
	Author   *User  `gorm:"foreignKey:AuthorID"`
	Title    string `gorm:"type:varchar(255)"`
}

type PipelineCardApplicant struct {
	BaseModel
	PipelineCardID string        `gorm:"type:varchar(36);uniqueIndex:idx_card_applicant"`
	PipelineCard   *PipelineCard `gorm:"foreignKey:PipelineCardID"`
	ApplicantID    string        `gorm:"type:varchar(36);uniqueIndex:idx_card_applicant"`
	Applicant      *Applicant    `gorm:"foreignKey:ApplicantID"`
	AddedAt        time.Time
}
