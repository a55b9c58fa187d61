package commission

import (
	"time"

	"github.com/pkg/errors"

	"ats-backend/db"
	commissionstore "ats-backend/lib/commission/store"
	endorsementstore "ats-backend/lib/endorsement/store"
	filestorage "ats-backend/lib/file-storage"
	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	commissionapimodels "ats-backend/models/api/commission"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(userID, userName string, data commissionapimodels.CommissionData) (id string, err error)
	UpdateAmount(userID, userName, id string, currentCommission int64) error
	AddPayment(userID, userName, id string, data commissionapimodels.PaymentData) error
	GetByID(id string) (commissionapimodels.CommissionView, error)
	List(filter dbmodels.CommissionFilter) ([]commissionapimodels.CommissionView, error)
	Summary(filter dbmodels.CommissionFilter) ([]commissionapimodels.SummaryRowView, error)
	SummaryRows(filter dbmodels.CommissionFilter) ([]dbmodels.CommissionSummaryRow, error)
	Delete(userID, userName, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(commissionstore.NewInstance(db.DB), endorsementstore.NewInstance(db.DB))
}

// NewProvider builds a handler over explicit stores.
func NewProvider(store commissionstore.Provider, endorsementStore endorsementstore.Provider) Provider {
	return impl{
		store:            store,
		endorsementStore: endorsementStore,
	}
}

type impl struct {
	store            commissionstore.Provider
	endorsementStore endorsementstore.Provider
}

func (i impl) Create(userID, userName string, data commissionapimodels.CommissionData) (string, error) {
	endorsement, err := i.endorsementStore.GetByID(data.JobOrderApplicantID)
	if err != nil {
		return "", err
	}
	if endorsement == nil {
		return "", errors.New("application record not found")
	}
	rec := dbmodels.Commission{
		JobOrderApplicantID: data.JobOrderApplicantID,
		AuthorID:            endorsement.AuthorID,
		CurrentCommission:   data.CurrentCommission,
		Status:              models.CommissionStatusPending,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionCreated, models.EntityTypeCommission, id,
		dbmodels.EntityChanges{Description: "commission created"})
	connectionhub.Instance.Broadcast(models.EntityTypeCommission, string(models.LogActionCreated), id)
	return id, nil
}

func (i impl) UpdateAmount(userID, userName, id string, currentCommission int64) error {
	if currentCommission < 0 {
		return errors.New("commission amount must not be negative")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("commission not found")
	}
	updMap := map[string]interface{}{
		"current_commission": currentCommission,
		"status":             deriveStatus(currentCommission, rec.TotalReceived()),
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "commission amount updated"}
	changes.Append("current_commission", rec.CurrentCommission, currentCommission)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeCommission, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeCommission, string(models.LogActionUpdated), id)
	return nil
}

// AddPayment appends to the payment list and re-derives the received total
// from the list itself, earlier payments are never edited or removed.
func (i impl) AddPayment(userID, userName, id string, data commissionapimodels.PaymentData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("commission not found")
	}
	details := rec.Details
	if len(details) == 0 && rec.ReceivedCommission != 0 {
		// Old rows whose stored payload did not parse keep their total in the
		// received_commission column only. Fold that balance into the list so
		// appending stays additive and nothing already paid is lost.
		details = dbmodels.PaymentDetails{{Amount: rec.ReceivedCommission, PaidAt: rec.UpdatedAt}}
	}
	details = append(details, dbmodels.PaymentRecord{
		PaymentType: data.PaymentType,
		Amount:      data.Amount,
		ReceiptKey:  data.ReceiptKey,
		PaidAt:      time.Now(),
	})
	received := details.Total()
	updMap := map[string]interface{}{
		"details":             details,
		"received_commission": received,
		"status":              deriveStatus(rec.CurrentCommission, received),
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "commission payment recorded (" + data.PaymentType.ToHuman() + ")"}
	changes.Append("received_commission", rec.TotalReceived(), received)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeCommission, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeCommission, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) GetByID(id string) (commissionapimodels.CommissionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return commissionapimodels.CommissionView{}, err
	}
	if rec == nil {
		return commissionapimodels.CommissionView{}, errors.New("commission not found")
	}
	view := commissionapimodels.CommissionConvert(*rec)
	for idx := range view.Payments {
		if view.Payments[idx].ReceiptKey != "" {
			view.Payments[idx].ReceiptURL = filestorage.Instance.GetPublicURL(view.Payments[idx].ReceiptKey)
		}
	}
	return view, nil
}

func (i impl) List(filter dbmodels.CommissionFilter) ([]commissionapimodels.CommissionView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]commissionapimodels.CommissionView, 0, len(list))
	for _, rec := range list {
		result = append(result, commissionapimodels.CommissionConvert(rec))
	}
	return result, nil
}

func (i impl) Summary(filter dbmodels.CommissionFilter) ([]commissionapimodels.SummaryRowView, error) {
	rows, err := i.store.Summary(filter)
	if err != nil {
		return nil, err
	}
	result := make([]commissionapimodels.SummaryRowView, 0, len(rows))
	for _, row := range rows {
		result = append(result, commissionapimodels.SummaryConvert(row))
	}
	return result, nil
}

// SummaryRows exposes the raw aggregation for the XLS export.
func (i impl) SummaryRows(filter dbmodels.CommissionFilter) ([]dbmodels.CommissionSummaryRow, error) {
	return i.store.Summary(filter)
}

func (i impl) Delete(userID, userName, id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionDeleted, models.EntityTypeCommission, id,
		dbmodels.EntityChanges{Description: "commission deleted"})
	connectionhub.Instance.Broadcast(models.EntityTypeCommission, string(models.LogActionDeleted), id)
	return nil
}

func deriveStatus(current, received int64) models.CommissionStatus {
	switch {
	case received <= 0:
		return models.CommissionStatusPending
	case received < current:
		return models.CommissionStatusPartial
	default:
		return models.CommissionStatusPaid
	}
}
