package pipeline

import (
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	pipelineapimodels "ats-backend/models/api/pipeline"
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

type cardLink struct {
	cardID      string
	applicantID string
	addedAt     time.Time
}

type fakePipelineStore struct {
	cards map[string]*dbmodels.PipelineCard
	links []cardLink
	seq   int
}

func newFakePipelineStore() *fakePipelineStore {
	return &fakePipelineStore{cards: map[string]*dbmodels.PipelineCard{}}
}

func (f *fakePipelineStore) Create(rec dbmodels.PipelineCard) (string, error) {
	f.seq++
	rec.ID = "card-" + strconv.Itoa(f.seq)
	f.cards[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakePipelineStore) Update(id string, updMap map[string]interface{}) error {
	rec, exist := f.cards[id]
	if !exist {
		return errors.New("pipeline card not found")
	}
	if v, ok := updMap["title"]; ok {
		rec.Title = v.(string)
	}
	return nil
}

func (f *fakePipelineStore) GetByID(id string) (*dbmodels.PipelineCard, error) {
	rec, exist := f.cards[id]
	if !exist {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (f *fakePipelineStore) List(authorID string) ([]dbmodels.PipelineCard, error) {
	list := []dbmodels.PipelineCard{}
	for _, rec := range f.cards {
		if authorID != "" && rec.AuthorID != authorID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

// Delete drops the card and cascades to its links.
func (f *fakePipelineStore) Delete(id string) error {
	if _, exist := f.cards[id]; !exist {
		return errors.New("pipeline card not found")
	}
	delete(f.cards, id)
	kept := f.links[:0]
	for _, link := range f.links {
		if link.cardID != id {
			kept = append(kept, link)
		}
	}
	f.links = kept
	return nil
}

func (f *fakePipelineStore) AddLink(cardID, applicantID string) error {
	for _, link := range f.links {
		if link.cardID == cardID && link.applicantID == applicantID {
			return nil
		}
	}
	f.links = append(f.links, cardLink{cardID: cardID, applicantID: applicantID, addedAt: time.Now()})
	return nil
}

func (f *fakePipelineStore) RemoveLink(cardID, applicantID string) error {
	kept := f.links[:0]
	for _, link := range f.links {
		if link.cardID == cardID && link.applicantID == applicantID {
			continue
		}
		kept = append(kept, link)
	}
	f.links = kept
	return nil
}

func (f *fakePipelineStore) Links(cardID string) ([]dbmodels.PipelineCardApplicant, error) {
	list := []dbmodels.PipelineCardApplicant{}
	for _, link := range f.links {
		if link.cardID != cardID {
			continue
		}
		rec := dbmodels.PipelineCardApplicant{
			PipelineCardID: link.cardID,
			ApplicantID:    link.applicantID,
			AddedAt:        link.addedAt,
		}
		list = append(list, rec)
	}
	return list, nil
}

type fakeApplicantStore struct {
	recs map[string]*dbmodels.Applicant
}

func (f *fakeApplicantStore) Create(rec dbmodels.Applicant) (string, error) { return rec.ID, nil }
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
	return nil, nil
}
func (f *fakeApplicantStore) Delete(id string) error { return nil }

func newTestHandler() (impl, *fakePipelineStore) {
	systemlog.Instance = noopAudit{}
	connectionhub.Instance = noopHub{}
	store := newFakePipelineStore()
	applicants := map[string]*dbmodels.Applicant{}
	for _, id := range []string{"app-1", "app-2"} {
		rec := &dbmodels.Applicant{FirstName: "A", LastName: id}
		rec.ID = id
		applicants[id] = rec
	}
	handler := impl{
		store:          store,
		applicantStore: &fakeApplicantStore{recs: applicants},
	}
	return handler, store
}

func TestPipelineCardApplicants(t *testing.T) {
	handler, store := newTestHandler()
	id, err := handler.Create("rec-1", "Recruiter01", pipelineapimodels.CardData{Title: "Java bench"})
	require.Nil(t, err)

	require.Nil(t, handler.AddApplicants("rec-1", "Recruiter01", id, []string{"app-1", "app-2"}))
	require.Len(t, store.links, 2)

	t.Run(`re-adding keeps a single link`, func(t *testing.T) {
		require.Nil(t, handler.AddApplicants("rec-1", "Recruiter01", id, []string{"app-1"}))
		require.Len(t, store.links, 2)
	})

	t.Run(`unknown applicant is rejected`, func(t *testing.T) {
		err := handler.AddApplicants("rec-1", "Recruiter01", id, []string{"missing"})
		require.NotNil(t, err)
	})

	t.Run(`removing a missing link is a no-op`, func(t *testing.T) {
		require.Nil(t, handler.RemoveApplicant("rec-1", "Recruiter01", id, "app-1"))
		require.Len(t, store.links, 1)
		// second removal of the same applicant succeeds silently
		require.Nil(t, handler.RemoveApplicant("rec-1", "Recruiter01", id, "app-1"))
		require.Len(t, store.links, 1)
	})

	t.Run(`delete cascades to links only`, func(t *testing.T) {
		require.Nil(t, handler.Delete("rec-1", "Recruiter01", id))
		require.Empty(t, store.links)
		// applicants themselves survive the card
		view, err := handler.GetByID(id)
		require.NotNil(t, err)
		require.Empty(t, view.ID)
	})
}

func TestPipelineCardRename(t *testing.T) {
	handler, store := newTestHandler()
	id, err := handler.Create("rec-1", "Recruiter01", pipelineapimodels.CardData{Title: "Old"})
	require.Nil(t, err)
	require.Nil(t, handler.Rename("rec-1", "Recruiter01", id, pipelineapimodels.CardData{Title: "New"}))
	require.Equal(t, "New", store.cards[id].Title)

	require.NotNil(t, handler.Rename("rec-1", "Recruiter01", "missing", pipelineapimodels.CardData{Title: "X"}))
}
