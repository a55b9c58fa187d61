package endorsementstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobOrderApplicant) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.JobOrderApplicant, err error)
	List(filter dbmodels.EndorsementFilter) ([]dbmodels.JobOrderApplicant, error)
	ApplicantIDsByJobOrder(jobOrderID string) ([]string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobOrderApplicant) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", errors.New("the applicant is already endorsed to this job order")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobOrderApplicant{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application record not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.JobOrderApplicant, error) {
	rec := dbmodels.JobOrderApplicant{}
	err := i.db.
		Model(&dbmodels.JobOrderApplicant{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.EndorsementFilter) (list []dbmodels.JobOrderApplicant, err error) {
	list = []dbmodels.JobOrderApplicant{}
	tx := i.db.
		Model(dbmodels.JobOrderApplicant{})
	if filter.JobOrderID != "" {
		tx.Where("job_order_id = ?", filter.JobOrderID)
	}
	if filter.ApplicantID != "" {
		tx.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Joins("left join applicants as a on job_order_applicants.applicant_id = a.id").
			Where("LOWER(CONCAT(a.first_name, ' ', a.last_name)) like ? or LOWER(a.email) like ?", searchValue, searchValue)
	}
	err = tx.Preload(clause.Associations).Order("job_order_applicants.created_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ApplicantIDsByJobOrder(jobOrderID string) (ids []string, err error) {
	err = i.db.
		Model(&dbmodels.JobOrderApplicant{}).
		Where("job_order_id = ?", jobOrderID).
		Pluck("applicant_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
