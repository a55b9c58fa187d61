package applicant

import (
	"github.com/pkg/errors"

	"ats-backend/db"
	applicantstore "ats-backend/lib/applicant/store"
	filestorage "ats-backend/lib/file-storage"
	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	applicantapimodels "ats-backend/models/api/applicant"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(userID, userName string, data applicantapimodels.ApplicantData) (id string, err error)
	Update(userID, userName, id string, data applicantapimodels.ApplicantData) error
	GetByID(id string) (applicantapimodels.ApplicantView, error)
	List(req applicantapimodels.ApplicantListRequest) ([]applicantapimodels.ApplicantView, int64, error)
	Delete(userID, userName, id string) error
	AttachResume(userID, userName, id, fileKey string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(applicantstore.NewInstance(db.DB))
}

// NewProvider builds a handler over an explicit store.
func NewProvider(store applicantstore.Provider) Provider {
	return impl{store: store}
}

type impl struct {
	store applicantstore.Provider
}

func (i impl) Create(userID, userName string, data applicantapimodels.ApplicantData) (string, error) {
	rec := dbmodels.Applicant{
		AuthorID:  userID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionCreated, models.EntityTypeApplicant, id,
		dbmodels.EntityChanges{Description: "applicant created: " + rec.GetFullName()})
	connectionhub.Instance.Broadcast(models.EntityTypeApplicant, string(models.LogActionCreated), id)
	return id, nil
}

func (i impl) Update(userID, userName, id string, data applicantapimodels.ApplicantData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("applicant not found")
	}
	updMap := map[string]interface{}{
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"email":      data.Email,
		"phone":      data.Phone,
		"address":    data.Address,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "applicant updated"}
	changes.Append("first_name", rec.FirstName, data.FirstName)
	changes.Append("last_name", rec.LastName, data.LastName)
	changes.Append("email", rec.Email, data.Email)
	changes.Append("phone", rec.Phone, data.Phone)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeApplicant, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeApplicant, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) GetByID(id string) (applicantapimodels.ApplicantView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	if rec == nil {
		return applicantapimodels.ApplicantView{}, errors.New("applicant not found")
	}
	view := applicantapimodels.ApplicantConvert(*rec)
	if view.ResumeKey != "" {
		view.ResumeURL = filestorage.Instance.GetPublicURL(view.ResumeKey)
	}
	return view, nil
}

func (i impl) List(req applicantapimodels.ApplicantListRequest) ([]applicantapimodels.ApplicantView, int64, error) {
	page, limit := req.GetPage()
	list, err := i.store.List(req.Filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(req.Filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(userID, userName, id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionDeleted, models.EntityTypeApplicant, id,
		dbmodels.EntityChanges{Description: "applicant deleted"})
	connectionhub.Instance.Broadcast(models.EntityTypeApplicant, string(models.LogActionDeleted), id)
	return nil
}

func (i impl) AttachResume(userID, userName, id, fileKey string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("applicant not found")
	}
	err = i.store.Update(id, map[string]interface{}{"resume_key": fileKey})
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "résumé attached"}
	changes.Append("resume_key", rec.ResumeKey, fileKey)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeApplicant, id, changes)
	return nil
}
