package endorsement

import (
	"strconv"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	endorsementapimodels "ats-backend/models/api/endorsement"
	syslogapimodels "ats-backend/models/api/syslog"
	dbmodels "ats-backend/models/db"
)

type noopAudit struct{}

func (noopAudit) Write(userID, userName string, action models.LogAction, entityType, entityID string, changes dbmodels.EntityChanges) {
}
func (noopAudit) List(filter dbmodels.SystemLogFilter, page, limit int) ([]syslogapimodels.LogView, int64, error) {
	return nil, 0, nil
}
func (noopAudit) CheckAccess(password string) bool { return false }

type noopHub struct{}

func (noopHub) AddClient(userID string, conn *websocket.Conn) {}
func (noopHub) DeleteClient(userID string)                    {}
func (noopHub) Broadcast(entity, action, entityID string)     {}
func (noopHub) IsConnected(userID string) bool                { return false }

type fakeEndorsementStore struct {
	recs map[string]*dbmodels.JobOrderApplicant
	seq  int
}

func newFakeEndorsementStore() *fakeEndorsementStore {
	return &fakeEndorsementStore{recs: map[string]*dbmodels.JobOrderApplicant{}}
}

func (f *fakeEndorsementStore) Create(rec dbmodels.JobOrderApplicant) (string, error) {
	for _, existing := range f.recs {
		if existing.JobOrderID == rec.JobOrderID && existing.ApplicantID == rec.ApplicantID {
			return "", errors.New("the applicant is already endorsed to this job order")
		}
	}
	f.seq++
	rec.ID = "joa-" + strconv.Itoa(f.seq)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeEndorsementStore) Update(id string, updMap map[string]interface{}) error {
	rec, exist := f.recs[id]
	if !exist {
		return errors.New("application record not found")
	}
	if v, ok := updMap["stage"]; ok {
		rec.Stage = v.(models.ApplicationStage)
	}
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.ApplicationStatus)
	}
	if v, ok := updMap["asking_salary"]; ok {
		rec.AskingSalary = v.(int64)
	}
	if v, ok := updMap["profiler"]; ok {
		rec.Profiler = v.(string)
	}
	if v, ok := updMap["client_feedback"]; ok {
		rec.ClientFeedback = v.(string)
	}
	return nil
}

func (f *fakeEndorsementStore) GetByID(id string) (*dbmodels.JobOrderApplicant, error) {
	rec, exist := f.recs[id]
	if !exist {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeEndorsementStore) List(filter dbmodels.EndorsementFilter) ([]dbmodels.JobOrderApplicant, error) {
	list := []dbmodels.JobOrderApplicant{}
	for _, rec := range f.recs {
		if filter.JobOrderID != "" && rec.JobOrderID != filter.JobOrderID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeEndorsementStore) ApplicantIDsByJobOrder(jobOrderID string) ([]string, error) {
	ids := []string{}
	for _, rec := range f.recs {
		if rec.JobOrderID == jobOrderID {
			ids = append(ids, rec.ApplicantID)
		}
	}
	return ids, nil
}

type fakeJobOrderStore struct {
	recs map[string]*dbmodels.JobOrderExt
	seq  int
}

func (f *fakeJobOrderStore) Create(rec dbmodels.JobOrder) (string, error) {
	f.seq++
	rec.ID = "jo-" + strconv.Itoa(f.seq)
	f.recs[rec.ID] = &dbmodels.JobOrderExt{JobOrder: rec}
	return rec.ID, nil
}
func (f *fakeJobOrderStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeJobOrderStore) GetByID(id, userID string) (*dbmodels.JobOrderExt, error) {
	rec, exist := f.recs[id]
	if !exist {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}
func (f *fakeJobOrderStore) List(userID string, filter dbmodels.JobOrderFilter, page, limit int) ([]dbmodels.JobOrderExt, error) {
	return nil, nil
}
func (f *fakeJobOrderStore) ListCount(userID string, filter dbmodels.JobOrderFilter) (int64, error) {
	return 0, nil
}
func (f *fakeJobOrderStore) CandidateCounts() (map[string]int64, error) { return nil, nil }
func (f *fakeJobOrderStore) SetFavorite(jobOrderID, userID string) error {
	return nil
}
func (f *fakeJobOrderStore) RemoveFavorite(jobOrderID, userID string) error {
	return nil
}
func (f *fakeJobOrderStore) IsFavorite(jobOrderID, userID string) (bool, error) {
	return false, nil
}

type fakeApplicantStore struct {
	recs map[string]*dbmodels.Applicant
	seq  int
}

func (f *fakeApplicantStore) Create(rec dbmodels.Applicant) (string, error) {
	f.seq++
	rec.ID = "app-" + strconv.Itoa(f.seq)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}
func (f *fakeApplicantStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeApplicantStore) GetByID(id string) (*dbmodels.Applicant, error) {
	rec, exist := f.recs[id]
	if !exist {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}
func (f *fakeApplicantStore) List(filter dbmodels.ApplicantFilter, page, limit int) ([]dbmodels.Applicant, error) {
	return nil, nil
}
func (f *fakeApplicantStore) ListCount(filter dbmodels.ApplicantFilter) (int64, error) {
	return 0, nil
}
func (f *fakeApplicantStore) ListExcluding(filter dbmodels.ApplicantFilter, excludeIDs []string) ([]dbmodels.Applicant, error) {
	excluded := map[string]bool{}
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	list := []dbmodels.Applicant{}
	for _, rec := range f.recs {
		if excluded[rec.ID] {
			continue
		}
		if filter.AuthorID != "" && rec.AuthorID != filter.AuthorID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}
func (f *fakeApplicantStore) Delete(id string) error { return nil }

func newTestHandler() (impl, *fakeEndorsementStore) {
	systemlog.Instance = noopAudit{}
	connectionhub.Instance = noopHub{}

	jobOrder := &dbmodels.JobOrderExt{}
	jobOrder.ID = "jo-1"
	jobOrder.Title = "Go Engineer"
	jobOrder.ClientID = "cli-1"

	applicants := map[string]*dbmodels.Applicant{}
	for _, id := range []string{"app-1", "app-2"} {
		rec := &dbmodels.Applicant{FirstName: "Jane", LastName: id, AuthorID: "rec-1"}
		rec.ID = id
		applicants[id] = rec
	}

	store := newFakeEndorsementStore()
	handler := impl{
		store:          store,
		jobOrderStore:  &fakeJobOrderStore{recs: map[string]*dbmodels.JobOrderExt{"jo-1": jobOrder}},
		applicantStore: &fakeApplicantStore{recs: applicants},
	}
	return handler, store
}

func TestEndorse(t *testing.T) {
	handler, store := newTestHandler()

	id, err := handler.Endorse("rec-1", "Recruiter01", endorsementapimodels.EndorsementData{
		JobOrderID:  "jo-1",
		ApplicantID: "app-1",
	})
	require.Nil(t, err)
	rec := store.recs[id]
	require.Equal(t, models.ApplicationStageSourced, rec.Stage)
	require.Equal(t, models.ApplicationStatusPending, rec.Status)
	// client reference denormalized from the job order
	require.Equal(t, "cli-1", rec.ClientID)

	t.Run(`duplicate endorsement is rejected`, func(t *testing.T) {
		_, err := handler.Endorse("rec-1", "Recruiter01", endorsementapimodels.EndorsementData{
			JobOrderID:  "jo-1",
			ApplicantID: "app-1",
		})
		require.NotNil(t, err)
	})

	t.Run(`unknown job order is rejected`, func(t *testing.T) {
		_, err := handler.Endorse("rec-1", "Recruiter01", endorsementapimodels.EndorsementData{
			JobOrderID:  "missing",
			ApplicantID: "app-1",
		})
		require.NotNil(t, err)
	})
}

func TestStageMovesAreUnrestricted(t *testing.T) {
	handler, store := newTestHandler()
	id, err := handler.Endorse("rec-1", "Recruiter01", endorsementapimodels.EndorsementData{
		JobOrderID:  "jo-1",
		ApplicantID: "app-1",
	})
	require.Nil(t, err)

	// forward, backward and skipping moves are all allowed
	for _, stage := range []models.ApplicationStage{
		models.ApplicationStageOffer,
		models.ApplicationStageSourced,
		models.ApplicationStageHired,
	} {
		require.Nil(t, handler.UpdateStage("rec-1", "Recruiter01", id, stage))
		require.Equal(t, stage, store.recs[id].Stage)
	}
}

func TestCandidatePool(t *testing.T) {
	handler, _ := newTestHandler()
	_, err := handler.Endorse("rec-1", "Recruiter01", endorsementapimodels.EndorsementData{
		JobOrderID:  "jo-1",
		ApplicantID: "app-1",
	})
	require.Nil(t, err)

	// endorsed applicants disappear from the pool
	pool, err := handler.CandidatePool("rec-1", "jo-1", "")
	require.Nil(t, err)
	require.Len(t, pool, 1)
	require.Equal(t, "app-2", pool[0].ID)
}
