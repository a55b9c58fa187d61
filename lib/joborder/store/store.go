package joborderstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobOrder) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id, userID string) (rec *dbmodels.JobOrderExt, err error)
	List(userID string, filter dbmodels.JobOrderFilter, page, limit int) ([]dbmodels.JobOrderExt, error)
	ListCount(userID string, filter dbmodels.JobOrderFilter) (int64, error)
	CandidateCounts() (map[string]int64, error)
	SetFavorite(jobOrderID, userID string) error
	RemoveFavorite(jobOrderID, userID string) error
	IsFavorite(jobOrderID, userID string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobOrder) (id string, err error) {
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
		Model(&dbmodels.JobOrder{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job order not found")
	}
	return nil
}

func (i impl) GetByID(id, userID string) (*dbmodels.JobOrderExt, error) {
	rec := dbmodels.JobOrderExt{}
	err := i.db.
		Model(&dbmodels.JobOrder{}).
		Select("job_orders.*, f.selected as favorite").
		Joins("left join favorites as f on job_orders.id = f.job_order_id and f.user_id = ?", userID).
		Where("job_orders.id = ?", id).
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

func (i impl) List(userID string, filter dbmodels.JobOrderFilter, page, limit int) (list []dbmodels.JobOrderExt, err error) {
	list = []dbmodels.JobOrderExt{}
	tx := i.db.
		Model(dbmodels.JobOrder{}).
		Select("job_orders.*, f.selected as favorite").
		Joins("left join favorites as f on job_orders.id = f.job_order_id and f.user_id = ?", userID)
	i.addFilter(tx, filter)
	if filter.Sort.CreatedAtDesc {
		tx.Order("job_orders.created_at desc")
	} else {
		tx.Order("job_orders.created_at")
	}
	if limit > 0 {
		tx.Offset((page - 1) * limit).Limit(limit)
	}
	err = tx.Preload(clause.Associations).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(userID string, filter dbmodels.JobOrderFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.JobOrder{}).
		Joins("left join favorites as f on job_orders.id = f.job_order_id and f.user_id = ?", userID)
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "job order count error")
	}
	return count, nil
}

// CandidateCounts returns candidate counts for every job order in one grouped
// query, so board rendering never fans out into a count per card.
func (i impl) CandidateCounts() (map[string]int64, error) {
	type row struct {
		JobOrderID string
		Cnt        int64
	}
	rows := []row{}
	err := i.db.
		Model(&dbmodels.JobOrderApplicant{}).
		Select("job_order_id, count(*) as cnt").
		Group("job_order_id").
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "candidate count error")
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.JobOrderID] = r.Cnt
	}
	return counts, nil
}

func (i impl) SetFavorite(jobOrderID, userID string) error {
	rec := dbmodels.Favorite{
		JobOrderID: jobOrderID,
		UserID:     userID,
		Selected:   true,
	}
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return nil
		}
		return errors.Wrap(err, "favorite add error")
	}
	return nil
}

func (i impl) RemoveFavorite(jobOrderID, userID string) error {
	rec := dbmodels.Favorite{}
	err := i.db.Model(&dbmodels.Favorite{}).
		Where("user_id = ?", userID).
		Where("job_order_id = ?", jobOrderID).
		Delete(&rec).Error
	if err != nil {
		return errors.Wrap(err, "favorite remove error")
	}
	return nil
}

func (i impl) IsFavorite(jobOrderID, userID string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.Favorite{}).
		Select("count(*) > 0").
		Where("user_id = ?", userID).
		Where("job_order_id = ?", jobOrderID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.JobOrderFilter) {
	tx.Where("job_orders.archived = ?", filter.Archived)
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(job_orders.title) like ?", searchValue)
	}
	if filter.ClientID != "" {
		tx.Where("job_orders.client_id = ?", filter.ClientID)
	}
	if len(filter.Statuses) > 0 {
		tx.Where("job_orders.status in (?)", filter.Statuses)
	}
	if filter.Priority != "" {
		tx.Where("job_orders.priority = ?", filter.Priority)
	}
	if filter.AuthorID != "" {
		tx.Where("job_orders.author_id = ?", filter.AuthorID)
	}
	if filter.Favorite {
		tx.Where("f.selected = true")
	}
}
