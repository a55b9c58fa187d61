package systemlogstore

import (
	"gorm.io/gorm"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.SystemLog) error
	List(filter dbmodels.SystemLogFilter, page, limit int) ([]dbmodels.SystemLog, error)
	ListCount(filter dbmodels.SystemLogFilter) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SystemLog) error {
	return i.db.Create(&rec).Error
}

func (i impl) List(filter dbmodels.SystemLogFilter, page, limit int) (list []dbmodels.SystemLog, err error) {
	list = []dbmodels.SystemLog{}
	tx := i.db.
		Model(dbmodels.SystemLog{})
	i.addFilter(tx, filter)
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter dbmodels.SystemLogFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.SystemLog{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.SystemLogFilter) {
	if filter.UserID != "" {
		tx.Where("user_id = ?", filter.UserID)
	}
	if filter.EntityType != "" {
		tx.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		tx.Where("entity_id = ?", filter.EntityID)
	}
}
