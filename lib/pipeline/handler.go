package pipeline

import (
	"github.com/pkg/errors"

	"ats-backend/db"
	applicantstore "ats-backend/lib/applicant/store"
	pipelinestore "ats-backend/lib/pipeline/store"
	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	pipelineapimodels "ats-backend/models/api/pipeline"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(userID, userName string, data pipelineapimodels.CardData) (id string, err error)
	Rename(userID, userName, id string, data pipelineapimodels.CardData) error
	GetByID(id string) (pipelineapimodels.CardView, error)
	List(userID string) ([]pipelineapimodels.CardView, error)
	Delete(userID, userName, id string) error
	AddApplicants(userID, userName, id string, applicantIDs []string) error
	RemoveApplicant(userID, userName, id, applicantID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          pipelinestore.NewInstance(db.DB),
		applicantStore: applicantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          pipelinestore.Provider
	applicantStore applicantstore.Provider
}

func (i impl) Create(userID, userName string, data pipelineapimodels.CardData) (string, error) {
	rec := dbmodels.PipelineCard{
		AuthorID: userID,
		Title:    data.Title,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionCreated, models.EntityTypePipelineCard, id,
		dbmodels.EntityChanges{Description: "pipeline card created: " + data.Title})
	connectionhub.Instance.Broadcast(models.EntityTypePipelineCard, string(models.LogActionCreated), id)
	return id, nil
}

func (i impl) Rename(userID, userName, id string, data pipelineapimodels.CardData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("pipeline card not found")
	}
	err = i.store.Update(id, map[string]interface{}{"title": data.Title})
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "pipeline card renamed"}
	changes.Append("title", rec.Title, data.Title)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypePipelineCard, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypePipelineCard, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) GetByID(id string) (pipelineapimodels.CardView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return pipelineapimodels.CardView{}, err
	}
	if rec == nil {
		return pipelineapimodels.CardView{}, errors.New("pipeline card not found")
	}
	links, err := i.store.Links(id)
	if err != nil {
		return pipelineapimodels.CardView{}, err
	}
	return pipelineapimodels.CardConvert(*rec, links), nil
}

func (i impl) List(userID string) ([]pipelineapimodels.CardView, error) {
	list, err := i.store.List(userID)
	if err != nil {
		return nil, err
	}
	result := make([]pipelineapimodels.CardView, 0, len(list))
	for _, rec := range list {
		links, err := i.store.Links(rec.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, pipelineapimodels.CardConvert(rec, links))
	}
	return result, nil
}

func (i impl) Delete(userID, userName, id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionDeleted, models.EntityTypePipelineCard, id,
		dbmodels.EntityChanges{Description: "pipeline card deleted"})
	connectionhub.Instance.Broadcast(models.EntityTypePipelineCard, string(models.LogActionDeleted), id)
	return nil
}

// AddApplicants links the given applicants to the card, applicants already on
// the card are silently skipped.
func (i impl) AddApplicants(userID, userName, id string, applicantIDs []string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("pipeline card not found")
	}
	for _, applicantID := range applicantIDs {
		applicant, err := i.applicantStore.GetByID(applicantID)
		if err != nil {
			return err
		}
		if applicant == nil {
			return errors.New("applicant not found")
		}
		err = i.store.AddLink(id, applicantID)
		if err != nil {
			return err
		}
	}
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypePipelineCard, id,
		dbmodels.EntityChanges{Description: "applicants added to pipeline card"})
	connectionhub.Instance.Broadcast(models.EntityTypePipelineCard, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) RemoveApplicant(userID, userName, id, applicantID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("pipeline card not found")
	}
	err = i.store.RemoveLink(id, applicantID)
	if err != nil {
		return err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypePipelineCard, id,
		dbmodels.EntityChanges{Description: "applicant removed from pipeline card"})
	connectionhub.Instance.Broadcast(models.EntityTypePipelineCard, string(models.LogActionUpdated), id)
	return nil
}
