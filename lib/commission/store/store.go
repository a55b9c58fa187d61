package commissionstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Commission) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Commission, err error)
	List(filter dbmodels.CommissionFilter) ([]dbmodels.Commission, error)
	Summary(filter dbmodels.CommissionFilter) ([]dbmodels.CommissionSummaryRow, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Commission) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", errors.New("a commission already exists for this application record")
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
		Model(&dbmodels.Commission{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("commission not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Commission, error) {
	rec := dbmodels.Commission{}
	err := i.db.
		Model(&dbmodels.Commission{}).
		Where("id = ?", id).
		Preload("JobOrderApplicant").
		Preload("JobOrderApplicant.Applicant").
		Preload("JobOrderApplicant.JobOrder").
		Preload("Author").
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

func (i impl) List(filter dbmodels.CommissionFilter) (list []dbmodels.Commission, err error) {
	list = []dbmodels.Commission{}
	tx := i.db.
		Model(dbmodels.Commission{})
	i.addFilter(tx, filter)
	err = tx.
		Preload("JobOrderApplicant").
		Preload("JobOrderApplicant.Applicant").
		Preload("JobOrderApplicant.JobOrder").
		Preload("Author").
		Order("commissions.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Summary aggregates per recruiter in one grouped query.
func (i impl) Summary(filter dbmodels.CommissionFilter) (rows []dbmodels.CommissionSummaryRow, err error) {
	rows = []dbmodels.CommissionSummaryRow{}
	tx := i.db.
		Model(dbmodels.Commission{}).
		Select("commissions.author_id as author_id, CONCAT(u.first_name, ' ', u.last_name) as author_name, " +
			"sum(commissions.current_commission) as total_current, sum(commissions.received_commission) as total_received").
		Joins("left join users as u on commissions.author_id = u.id").
		Group("commissions.author_id, u.first_name, u.last_name").
		Order("author_name")
	if filter.AuthorID != "" {
		tx.Where("commissions.author_id = ?", filter.AuthorID)
	}
	err = tx.Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "commission summary error")
	}
	return rows, nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Commission{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("commission not found")
	}
	return nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.CommissionFilter) {
	if filter.AuthorID != "" {
		tx.Where("commissions.author_id = ?", filter.AuthorID)
	}
	if filter.JobOrderID != "" {
		tx.Joins("left join job_order_applicants as joa on commissions.job_order_applicant_id = joa.id").
			Where("joa.job_order_id = ?", filter.JobOrderID)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Joins("left join job_order_applicants as sjoa on commissions.job_order_applicant_id = sjoa.id").
			Joins("left join applicants as a on sjoa.applicant_id = a.id").
			Joins("left join job_orders as jo on sjoa.job_order_id = jo.id").
			Where("LOWER(CONCAT(a.first_name, ' ', a.last_name)) like ? or LOWER(jo.title) like ?", searchValue, searchValue)
	}
}
