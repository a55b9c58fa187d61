package commission

import (
	"strconv"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	commissionapimodels "ats-backend/models/api/commission"
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

type fakeCommissionStore struct {
	recs map[string]*dbmodels.Commission
	seq  int
}

func newFakeCommissionStore() *fakeCommissionStore {
	return &fakeCommissionStore{recs: map[string]*dbmodels.Commission{}}
}

func (f *fakeCommissionStore) Create(rec dbmodels.Commission) (string, error) {
	for _, existing := range f.recs {
		if existing.JobOrderApplicantID == rec.JobOrderApplicantID {
			return "", errors.New("a commission already exists for this application record")
		}
	}
	f.seq++
	rec.ID = "com-" + strconv.Itoa(f.seq)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCommissionStore) Update(id string, updMap map[string]interface{}) error {
	rec, exist := f.recs[id]
	if !exist {
		return errors.New("commission not found")
	}
	if v, ok := updMap["current_commission"]; ok {
		rec.CurrentCommission = v.(int64)
	}
	if v, ok := updMap["received_commission"]; ok {
		rec.ReceivedCommission = v.(int64)
	}
	if v, ok := updMap["details"]; ok {
		rec.Details = v.(dbmodels.PaymentDetails)
	}
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.CommissionStatus)
	}
	return nil
}

func (f *fakeCommissionStore) GetByID(id string) (*dbmodels.Commission, error) {
	rec, exist := f.recs[id]
	if !exist {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeCommissionStore) List(filter dbmodels.CommissionFilter) ([]dbmodels.Commission, error) {
	list := []dbmodels.Commission{}
	for _, rec := range f.recs {
		if filter.AuthorID != "" && rec.AuthorID != filter.AuthorID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeCommissionStore) Summary(filter dbmodels.CommissionFilter) ([]dbmodels.CommissionSummaryRow, error) {
	totals := map[string]*dbmodels.CommissionSummaryRow{}
	for _, rec := range f.recs {
		if filter.AuthorID != "" && rec.AuthorID != filter.AuthorID {
			continue
		}
		row, exist := totals[rec.AuthorID]
		if !exist {
			row = &dbmodels.CommissionSummaryRow{AuthorID: rec.AuthorID}
			totals[rec.AuthorID] = row
		}
		row.TotalCurrent += rec.CurrentCommission
		row.TotalReceived += rec.ReceivedCommission
	}
	rows := []dbmodels.CommissionSummaryRow{}
	for _, row := range totals {
		rows = append(rows, *row)
	}
	return rows, nil
}

func (f *fakeCommissionStore) Delete(id string) error {
	if _, exist := f.recs[id]; !exist {
		return errors.New("commission not found")
	}
	delete(f.recs, id)
	return nil
}

type fakeEndorsementStore struct {
	recs map[string]*dbmodels.JobOrderApplicant
}

func (f *fakeEndorsementStore) Create(rec dbmodels.JobOrderApplicant) (string, error) {
	return rec.ID, nil
}

func (f *fakeEndorsementStore) Update(id string, updMap map[string]interface{}) error {
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
	return nil, nil
}

func (f *fakeEndorsementStore) ApplicantIDsByJobOrder(jobOrderID string) ([]string, error) {
	return nil, nil
}

func newTestHandler() (impl, *fakeCommissionStore) {
	systemlog.Instance = noopAudit{}
	connectionhub.Instance = noopHub{}
	endorsed := &dbmodels.JobOrderApplicant{
		JobOrderID:  "jo-1",
		ApplicantID: "app-1",
		AuthorID:    "rec-1",
	}
	endorsed.ID = "joa-1"
	store := newFakeCommissionStore()
	handler := impl{
		store:            store,
		endorsementStore: &fakeEndorsementStore{recs: map[string]*dbmodels.JobOrderApplicant{"joa-1": endorsed}},
	}
	return handler, store
}

func TestCommissionLifecycle(t *testing.T) {
	handler, store := newTestHandler()

	id, err := handler.Create("rec-1", "Recruiter01", commissionapimodels.CommissionData{
		JobOrderApplicantID: "joa-1",
		CurrentCommission:   1000,
	})
	require.Nil(t, err)
	require.Equal(t, models.CommissionStatusPending, store.recs[id].Status)
	require.Equal(t, "rec-1", store.recs[id].AuthorID)

	t.Run(`one commission per application record`, func(t *testing.T) {
		_, err := handler.Create("rec-1", "Recruiter01", commissionapimodels.CommissionData{
			JobOrderApplicantID: "joa-1",
			CurrentCommission:   500,
		})
		require.NotNil(t, err)
	})

	t.Run(`unknown application record is rejected`, func(t *testing.T) {
		_, err := handler.Create("rec-1", "Recruiter01", commissionapimodels.CommissionData{
			JobOrderApplicantID: "missing",
			CurrentCommission:   500,
		})
		require.NotNil(t, err)
	})

	t.Run(`partial payment`, func(t *testing.T) {
		err := handler.AddPayment("rec-1", "Recruiter01", id, commissionapimodels.PaymentData{
			PaymentType: models.PaymentType30Day,
			Amount:      400,
		})
		require.Nil(t, err)
		rec := store.recs[id]
		require.Len(t, rec.Details, 1)
		require.Equal(t, int64(400), rec.ReceivedCommission)
		require.Equal(t, int64(600), rec.Pending())
		require.Equal(t, models.CommissionStatusPartial, rec.Status)
	})

	t.Run(`payments append, earlier ones stay`, func(t *testing.T) {
		err := handler.AddPayment("rec-1", "Recruiter01", id, commissionapimodels.PaymentData{
			PaymentType: models.PaymentType60Day,
			Amount:      600,
		})
		require.Nil(t, err)
		rec := store.recs[id]
		require.Len(t, rec.Details, 2)
		require.Equal(t, models.PaymentType30Day, rec.Details[0].PaymentType)
		require.Equal(t, int64(1000), rec.ReceivedCommission)
		require.Equal(t, int64(0), rec.Pending())
		require.Equal(t, models.CommissionStatusPaid, rec.Status)
	})

	t.Run(`over-payment reported as negative pending`, func(t *testing.T) {
		err := handler.AddPayment("rec-1", "Recruiter01", id, commissionapimodels.PaymentData{
			PaymentType: models.PaymentType90Day,
			Amount:      100,
		})
		require.Nil(t, err)
		rec := store.recs[id]
		require.Equal(t, int64(-100), rec.Pending())
		require.Equal(t, models.CommissionStatusPaid, rec.Status)
	})
}

func TestAddPaymentToLegacyRow(t *testing.T) {
	handler, store := newTestHandler()
	// rows with an unparseable stored payload carry their total in the
	// received_commission column only
	legacy := &dbmodels.Commission{
		JobOrderApplicantID: "joa-1",
		AuthorID:            "rec-1",
		CurrentCommission:   1000,
		ReceivedCommission:  250,
	}
	legacy.ID = "com-legacy"
	store.recs[legacy.ID] = legacy

	require.Nil(t, handler.AddPayment("rec-1", "Recruiter01", legacy.ID, commissionapimodels.PaymentData{
		PaymentType: models.PaymentType30Day,
		Amount:      100,
	}))
	rec := store.recs[legacy.ID]
	// the old balance survives the append
	require.Equal(t, int64(350), rec.TotalReceived())
	require.Equal(t, int64(350), rec.ReceivedCommission)
	require.Len(t, rec.Details, 2)
	require.Equal(t, int64(250), rec.Details[0].Amount)
	require.Equal(t, int64(100), rec.Details[1].Amount)
	require.Equal(t, int64(650), rec.Pending())
	require.Equal(t, models.CommissionStatusPartial, rec.Status)
}

func TestUpdateAmount(t *testing.T) {
	handler, store := newTestHandler()
	id, err := handler.Create("rec-1", "Recruiter01", commissionapimodels.CommissionData{
		JobOrderApplicantID: "joa-1",
		CurrentCommission:   1000,
	})
	require.Nil(t, err)
	require.Nil(t, handler.AddPayment("rec-1", "Recruiter01", id, commissionapimodels.PaymentData{
		PaymentType: models.PaymentType30Day,
		Amount:      500,
	}))

	// lowering the total below what was received flips the status to paid
	require.Nil(t, handler.UpdateAmount("rec-1", "Recruiter01", id, 400))
	require.Equal(t, models.CommissionStatusPaid, store.recs[id].Status)
	require.Equal(t, int64(-100), store.recs[id].Pending())

	require.NotNil(t, handler.UpdateAmount("rec-1", "Recruiter01", id, -1))
}

func TestDeriveStatus(t *testing.T) {
	require.Equal(t, models.CommissionStatusPending, deriveStatus(1000, 0))
	require.Equal(t, models.CommissionStatusPartial, deriveStatus(1000, 999))
	require.Equal(t, models.CommissionStatusPaid, deriveStatus(1000, 1000))
	require.Equal(t, models.CommissionStatusPaid, deriveStatus(1000, 1500))
	require.Equal(t, models.CommissionStatusPending, deriveStatus(0, 0))
}
