package endorsement

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ats-backend/lib/applicant"
	"ats-backend/lib/commission"
	"ats-backend/lib/joborder"
	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	applicantapimodels "ats-backend/models/api/applicant"
	commissionapimodels "ats-backend/models/api/commission"
	endorsementapimodels "ats-backend/models/api/endorsement"
	joborderapimodels "ats-backend/models/api/joborder"
	dbmodels "ats-backend/models/db"
)

type fakeCommissionStore struct {
	recs map[string]*dbmodels.Commission
	seq  int
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
	return nil, nil
}

func (f *fakeCommissionStore) Summary(filter dbmodels.CommissionFilter) ([]dbmodels.CommissionSummaryRow, error) {
	return nil, nil
}

func (f *fakeCommissionStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

// The whole path from an opened job order to a partially paid commission,
// driven through the handlers the way the API layer drives them.
func TestRecruitmentFlow(t *testing.T) {
	systemlog.Instance = noopAudit{}
	connectionhub.Instance = noopHub{}

	jobOrderStore := &fakeJobOrderStore{recs: map[string]*dbmodels.JobOrderExt{}}
	applicantStore := &fakeApplicantStore{recs: map[string]*dbmodels.Applicant{}}
	endorsementStore := newFakeEndorsementStore()
	commissionStore := &fakeCommissionStore{recs: map[string]*dbmodels.Commission{}}

	jobOrders := joborder.NewProvider(jobOrderStore)
	applicants := applicant.NewProvider(applicantStore)
	endorsements := NewProvider(endorsementStore, jobOrderStore, applicantStore)
	commissions := commission.NewProvider(commissionStore, endorsementStore)

	jobOrderID, err := jobOrders.Create("rec-1", "Recruiter01", joborderapimodels.JobOrderData{
		Title:    "Backend Engineer",
		ClientID: "cli-1",
		Status:   models.JobOrderStatusKickoff,
		Priority: models.JobOrderPriorityHigh,
	})
	require.Nil(t, err)

	applicantID, err := applicants.Create("rec-1", "Recruiter01", applicantapimodels.ApplicantData{
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.Nil(t, err)

	endorsementID, err := endorsements.Endorse("rec-1", "Recruiter01", endorsementapimodels.EndorsementData{
		JobOrderID:  jobOrderID,
		ApplicantID: applicantID,
	})
	require.Nil(t, err)
	endorsed := endorsementStore.recs[endorsementID]
	require.Equal(t, models.ApplicationStageSourced, endorsed.Stage)
	require.Equal(t, models.ApplicationStatusPending, endorsed.Status)
	require.Equal(t, "cli-1", endorsed.ClientID)

	require.Nil(t, endorsements.UpdateStage("rec-1", "Recruiter01", endorsementID, models.ApplicationStageHired))
	require.Equal(t, models.ApplicationStageHired, endorsementStore.recs[endorsementID].Stage)

	commissionID, err := commissions.Create("rec-1", "Recruiter01", commissionapimodels.CommissionData{
		JobOrderApplicantID: endorsementID,
		CurrentCommission:   50000,
	})
	require.Nil(t, err)

	require.Nil(t, commissions.AddPayment("rec-1", "Recruiter01", commissionID, commissionapimodels.PaymentData{
		PaymentType: models.PaymentType30Day,
		Amount:      15000,
	}))

	rec := commissionStore.recs[commissionID]
	require.Equal(t, "rec-1", rec.AuthorID)
	require.Equal(t, int64(15000), rec.TotalReceived())
	require.Equal(t, int64(35000), rec.Pending())
	require.Equal(t, models.CommissionStatusPartial, rec.Status)
}
