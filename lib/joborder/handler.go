package joborder

import (
	"time"

	"github.com/pkg/errors"

	"ats-backend/db"
	filestorage "ats-backend/lib/file-storage"
	joborderstore "ats-backend/lib/joborder/store"
	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	joborderapimodels "ats-backend/models/api/joborder"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(userID, userName string, data joborderapimodels.JobOrderData) (id string, err error)
	Update(userID, userName, id string, data joborderapimodels.JobOrderData) error
	GetByID(id, userID string) (joborderapimodels.JobOrderView, error)
	List(userID string, req joborderapimodels.JobOrderListRequest) ([]joborderapimodels.JobOrderView, int64, error)
	Board(userID string) (joborderapimodels.BoardView, error)
	ChangeStatus(userID, userName, id string, status models.JobOrderStatus) error
	Archive(userID, userName, id string) error
	ToggleFavorite(id, userID string) (selected bool, err error)
	AttachJobDesc(userID, userName, id, fileKey string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(joborderstore.NewInstance(db.DB))
}

// NewProvider builds a handler over an explicit store.
func NewProvider(store joborderstore.Provider) Provider {
	return impl{store: store}
}

type impl struct {
	store joborderstore.Provider
}

func (i impl) Create(userID, userName string, data joborderapimodels.JobOrderData) (string, error) {
	rec := dbmodels.JobOrder{
		AuthorID:     userID,
		ClientID:     data.ClientID,
		Title:        data.Title,
		Status:       data.Status,
		Priority:     data.Priority,
		SourcingTags: data.SourcingTags,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionCreated, models.EntityTypeJobOrder, id,
		dbmodels.EntityChanges{Description: "job order created: " + data.Title})
	connectionhub.Instance.Broadcast(models.EntityTypeJobOrder, string(models.LogActionCreated), id)
	return id, nil
}

func (i impl) Update(userID, userName, id string, data joborderapimodels.JobOrderData) error {
	rec, err := i.store.GetByID(id, userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("job order not found")
	}
	updMap := map[string]interface{}{
		"title":         data.Title,
		"client_id":     data.ClientID,
		"status":        data.Status,
		"priority":      data.Priority,
		"sourcing_tags": data.SourcingTags,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "job order updated"}
	changes.Append("title", rec.Title, data.Title)
	changes.Append("status", string(rec.Status), string(data.Status))
	changes.Append("priority", string(rec.Priority), string(data.Priority))
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeJobOrder, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeJobOrder, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) GetByID(id, userID string) (joborderapimodels.JobOrderView, error) {
	rec, err := i.store.GetByID(id, userID)
	if err != nil {
		return joborderapimodels.JobOrderView{}, err
	}
	if rec == nil {
		return joborderapimodels.JobOrderView{}, errors.New("job order not found")
	}
	view := joborderapimodels.JobOrderConvert(*rec)
	if view.JobDescKey != "" {
		view.JobDescURL = filestorage.Instance.GetPublicURL(view.JobDescKey)
	}
	return view, nil
}

func (i impl) List(userID string, req joborderapimodels.JobOrderListRequest) ([]joborderapimodels.JobOrderView, int64, error) {
	page, limit := req.GetPage()
	list, err := i.store.List(userID, req.Filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(userID, req.Filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]joborderapimodels.JobOrderView, 0, len(list))
	for _, rec := range list {
		result = append(result, joborderapimodels.JobOrderConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Board(userID string) (joborderapimodels.BoardView, error) {
	filter := dbmodels.JobOrderFilter{Archived: false}
	list, err := i.store.List(userID, filter, 0, 0)
	if err != nil {
		return joborderapimodels.BoardView{}, err
	}
	counts, err := i.store.CandidateCounts()
	if err != nil {
		return joborderapimodels.BoardView{}, err
	}
	return BuildBoard(list, counts, time.Now()), nil
}

func (i impl) ChangeStatus(userID, userName, id string, status models.JobOrderStatus) error {
	rec, err := i.store.GetByID(id, userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("job order not found")
	}
	if rec.Status == status {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "job order status changed"}
	changes.Append("status", string(rec.Status), string(status))
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeJobOrder, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeJobOrder, string(models.LogActionUpdated), id)
	return nil
}

// Archive hides the job order from lists and the board. Job orders are never
// hard-deleted.
func (i impl) Archive(userID, userName, id string) error {
	rec, err := i.store.GetByID(id, userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("job order not found")
	}
	if rec.Archived {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{"archived": true})
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "job order archived"}
	changes.Append("archived", false, true)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeJobOrder, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeJobOrder, string(models.LogActionUpdated), id)
	return nil
}

// ToggleFavorite flips the (user, job order) favorite pair and reports the
// resulting state. Toggling twice restores the original membership.
func (i impl) ToggleFavorite(id, userID string) (bool, error) {
	selected, err := i.store.IsFavorite(id, userID)
	if err != nil {
		return false, err
	}
	if selected {
		err = i.store.RemoveFavorite(id, userID)
		return false, err
	}
	err = i.store.SetFavorite(id, userID)
	return true, err
}

func (i impl) AttachJobDesc(userID, userName, id, fileKey string) error {
	rec, err := i.store.GetByID(id, userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("job order not found")
	}
	err = i.store.Update(id, map[string]interface{}{"job_desc_key": fileKey})
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "job description attached"}
	changes.Append("job_desc_key", rec.JobDescKey, fileKey)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeJobOrder, id, changes)
	return nil
}
