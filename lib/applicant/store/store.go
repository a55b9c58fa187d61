package applicantstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Applicant, err error)
	List(filter dbmodels.ApplicantFilter, page, limit int) ([]dbmodels.Applicant, error)
	ListCount(filter dbmodels.ApplicantFilter) (int64, error)
	ListExcluding(filter dbmodels.ApplicantFilter, excludeIDs []string) ([]dbmodels.Applicant, error)
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

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("applicant not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
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

func (i impl) List(filter dbmodels.ApplicantFilter, page, limit int) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.
		Model(dbmodels.Applicant{})
	i.addFilter(tx, filter)
	if limit > 0 {
		tx.Offset((page - 1) * limit).Limit(limit)
	}
	err = tx.Preload(clause.Associations).Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter dbmodels.ApplicantFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Applicant{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "applicant count error")
	}
	return count, nil
}

// ListExcluding returns the filtered applicant pool minus already-linked IDs;
// candidate pickers use it so an applicant is never offered twice.
func (i impl) ListExcluding(filter dbmodels.ApplicantFilter, excludeIDs []string) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.
		Model(dbmodels.Applicant{})
	i.addFilter(tx, filter)
	if len(excludeIDs) > 0 {
		tx.Where("id not in (?)", excludeIDs)
	}
	err = tx.Order("last_name, first_name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Applicant{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("applicant not found")
	}
	return nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicantFilter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(first_name, ' ', last_name)) like ? or LOWER(email) like ?", searchValue, searchValue)
	}
	if filter.AuthorID != "" {
		tx.Where("author_id = ?", filter.AuthorID)
	}
}
