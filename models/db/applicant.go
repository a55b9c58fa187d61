package dbmodels

import "fmt"

type Applicant struct {
	SoftDeleteModel
	AuthorID  string `gorm:"type:varchar(36);index"`
	Author    *User  `gorm:"foreignKey:AuthorID"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(50)"`
	Address   string
	ResumeKey string `gorm:"type:varchar(500)"` // object storage key of the résumé
}

func (a Applicant) GetFullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

type ApplicantFilter struct {
	Search   string `json:"search"`
	AuthorID string `json:"author_id"`
}
