package pipelinestore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PipelineCard) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.PipelineCard, err error)
	List(authorID string) ([]dbmodels.PipelineCard, error)
	Delete(id string) error
	AddLink(cardID, applicantID string) error
	RemoveLink(cardID, applicantID string) error
	Links(cardID string) ([]dbmodels.PipelineCardApplicant, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PipelineCard) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
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
		Model(&dbmodels.PipelineCard{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("pipeline card not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.PipelineCard, error) {
	rec := dbmodels.PipelineCard{}
	err := i.db.
		Model(&dbmodels.PipelineCard{}).
		Where("id = ?", id).
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

func (i impl) List(authorID string) (list []dbmodels.PipelineCard, err error) {
	list = []dbmodels.PipelineCard{}
	tx := i.db.
		Model(dbmodels.PipelineCard{})
	if authorID != "" {
		tx.Where("author_id = ?", authorID)
	}
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the card; the AfterDelete hook drops its links. The ID is
// set on the model so the hook sees it.
func (i impl) Delete(id string) error {
	rec := dbmodels.PipelineCard{}
	rec.ID = id
	tx := i.db.
		Where("id = ?", id).
		Delete(&rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("pipeline card not found")
	}
	return nil
}

// AddLink is idempotent, adding an applicant already on the card is a no-op.
func (i impl) AddLink(cardID, applicantID string) error {
	rec := dbmodels.PipelineCardApplicant{
		PipelineCardID: cardID,
		ApplicantID:    applicantID,
		AddedAt:        time.Now(),
	}
	err := i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return nil
		}
		return err
	}
	return nil
}

// RemoveLink is a no-op when the applicant is not on the card.
func (i impl) RemoveLink(cardID, applicantID string) error {
	return i.db.
		Where("pipeline_card_id = ? and applicant_id = ?", cardID, applicantID).
		Delete(&dbmodels.PipelineCardApplicant{}).
		Error
}

func (i impl) Links(cardID string) (list []dbmodels.PipelineCardApplicant, err error) {
	list = []dbmodels.PipelineCardApplicant{}
	err = i.db.
		Model(dbmodels.PipelineCardApplicant{}).
		Where("pipeline_card_id = ?", cardID).
		Preload("Applicant").
		Order("added_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
