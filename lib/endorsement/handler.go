package endorsement

import (
	"github.com/pkg/errors"

	"ats-backend/db"
	applicantstore "ats-backend/lib/applicant/store"
	endorsementstore "ats-backend/lib/endorsement/store"
	joborderstore "ats-backend/lib/joborder/store"
	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	applicantapimodels "ats-backend/models/api/applicant"
	endorsementapimodels "ats-backend/models/api/endorsement"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Endorse(userID, userName string, data endorsementapimodels.EndorsementData) (id string, err error)
	Update(userID, userName, id string, data endorsementapimodels.EndorsementUpdate) error
	UpdateStage(userID, userName, id string, stage models.ApplicationStage) error
	UpdateStatus(userID, userName, id string, status models.ApplicationStatus) error
	GetByID(id string) (endorsementapimodels.EndorsementView, error)
	List(filter dbmodels.EndorsementFilter) ([]endorsementapimodels.EndorsementView, error)
	CandidatePool(userID, jobOrderID, search string) ([]applicantapimodels.ApplicantView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(endorsementstore.NewInstance(db.DB), joborderstore.NewInstance(db.DB), applicantstore.NewInstance(db.DB))
}

// NewProvider builds a handler over explicit stores.
func NewProvider(store endorsementstore.Provider, jobOrderStore joborderstore.Provider, applicantStore applicantstore.Provider) Provider {
	return impl{
		store:          store,
		jobOrderStore:  jobOrderStore,
		applicantStore: applicantStore,
	}
}

type impl struct {
	store          endorsementstore.Provider
	jobOrderStore  joborderstore.Provider
	applicantStore applicantstore.Provider
}

// Endorse links an applicant to a job order. The client reference is
// denormalized from the job order at link time.
func (i impl) Endorse(userID, userName string, data endorsementapimodels.EndorsementData) (string, error) {
	jobOrder, err := i.jobOrderStore.GetByID(data.JobOrderID, userID)
	if err != nil {
		return "", err
	}
	if jobOrder == nil {
		return "", errors.New("job order not found")
	}
	applicant, err := i.applicantStore.GetByID(data.ApplicantID)
	if err != nil {
		return "", err
	}
	if applicant == nil {
		return "", errors.New("applicant not found")
	}
	rec := dbmodels.JobOrderApplicant{
		JobOrderID:   data.JobOrderID,
		ApplicantID:  data.ApplicantID,
		ClientID:     jobOrder.ClientID,
		AuthorID:     userID,
		Stage:        models.ApplicationStageSourced,
		Status:       models.ApplicationStatusPending,
		AskingSalary: data.AskingSalary,
		Profiler:     data.Profiler,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionCreated, models.EntityTypeEndorsement, id,
		dbmodels.EntityChanges{Description: "applicant endorsed: " + applicant.GetFullName() + " -> " + jobOrder.Title})
	connectionhub.Instance.Broadcast(models.EntityTypeEndorsement, string(models.LogActionCreated), id)
	return id, nil
}

func (i impl) Update(userID, userName, id string, data endorsementapimodels.EndorsementUpdate) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("application record not found")
	}
	updMap := map[string]interface{}{}
	changes := dbmodels.EntityChanges{Description: "application record updated"}
	if data.AskingSalary != nil {
		updMap["asking_salary"] = *data.AskingSalary
		changes.Append("asking_salary", rec.AskingSalary, *data.AskingSalary)
	}
	if data.Profiler != nil {
		updMap["profiler"] = *data.Profiler
		changes.Append("profiler", rec.Profiler, *data.Profiler)
	}
	if data.ClientFeedback != nil {
		updMap["client_feedback"] = *data.ClientFeedback
		changes.Append("client_feedback", rec.ClientFeedback, *data.ClientFeedback)
	}
	if data.CandidateStartDate != nil {
		updMap["candidate_start_date"] = *data.CandidateStartDate
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeEndorsement, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeEndorsement, string(models.LogActionUpdated), id)
	return nil
}

// UpdateStage moves the applicant in the sourcing funnel. Any valid stage may
// be set at any time, there is deliberately no transition table.
func (i impl) UpdateStage(userID, userName, id string, stage models.ApplicationStage) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("application record not found")
	}
	if rec.Stage == stage {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{"stage": stage})
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "application stage changed"}
	changes.Append("stage", string(rec.Stage), string(stage))
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeEndorsement, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeEndorsement, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) UpdateStatus(userID, userName, id string, status models.ApplicationStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("application record not found")
	}
	if rec.Status == status {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "application status changed"}
	changes.Append("status", string(rec.Status), string(status))
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeEndorsement, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeEndorsement, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) GetByID(id string) (endorsementapimodels.EndorsementView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return endorsementapimodels.EndorsementView{}, err
	}
	if rec == nil {
		return endorsementapimodels.EndorsementView{}, errors.New("application record not found")
	}
	return endorsementapimodels.EndorsementConvert(*rec), nil
}

func (i impl) List(filter dbmodels.EndorsementFilter) ([]endorsementapimodels.EndorsementView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]endorsementapimodels.EndorsementView, 0, len(list))
	for _, rec := range list {
		result = append(result, endorsementapimodels.EndorsementConvert(rec))
	}
	return result, nil
}

// CandidatePool lists the user's own applicants still eligible for the job
// order, excluding the ones already endorsed to it.
func (i impl) CandidatePool(userID, jobOrderID, search string) ([]applicantapimodels.ApplicantView, error) {
	endorsedIDs, err := i.store.ApplicantIDsByJobOrder(jobOrderID)
	if err != nil {
		return nil, err
	}
	filter := dbmodels.ApplicantFilter{
		Search:   search,
		AuthorID: userID,
	}
	list, err := i.applicantStore.ListExcluding(filter, endorsedIDs)
	if err != nil {
		return nil, err
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantConvert(rec))
	}
	return result, nil
}
