package dbmodels

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ats-backend/models"
)

func (j *JobOrder) AfterDelete(tx *gorm.DB) (err error) {
	if j.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("job_order_id = ?", j.ID).Delete(&Favorite{})
	return
}

type JobOrder struct {
	BaseModel
	AuthorID      string  `gorm:"type:varchar(36)"`
	Author        *User   `gorm:"foreignKey:AuthorID"`
	ClientID      string  `gorm:"type:varchar(36);index:idx_job_order_client"`
	Client        *Client `gorm:"foreignKey:ClientID"`
	Title         string  `gorm:"type:varchar(255)"`
	Status        models.JobOrderStatus   `gorm:"type:varchar(50)"`
	Priority      models.JobOrderPriority `gorm:"type:varchar(20);index"`
	Archived      bool
	JobDescKey    string         `gorm:"type:varchar(500)"` // object storage key of the job description
	SourcingTags  pq.StringArray `gorm:"type:text[]"`
}

type JobOrderExt struct {
	JobOrder
	Favorite       bool
	CandidateCount int64 `gorm:"-"`
}

type JobOrderSort struct {
	CreatedAtDesc bool `json:"created_at_desc"`
}

type JobOrderFilter struct {
	Search   string                   `json:"search"`
	ClientID string                   `json:"client_id"`
	Statuses []models.JobOrderStatus  `json:"statuses"`
	Priority models.JobOrderPriority  `json:"priority"`
	AuthorID string                   `json:"author_id"`
	Favorite bool                     `json:"favorite"`
	Archived bool                     `json:"archived"`
	Sort     JobOrderSort             `json:"sort"`
}
