package commissionapimodels

import (
	"time"

	"github.com/pkg/errors"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type CommissionData struct {
	JobOrderApplicantID string `json:"job_order_applicant_id"`
	CurrentCommission   int64  `json:"current_commission"`
}

func (d CommissionData) Validate() error {
	if d.JobOrderApplicantID == "" {
		return errors.New("application record is required")
	}
	if d.CurrentCommission < 0 {
		return errors.New("commission amount must not be negative")
	}
	return nil
}

type AmountUpdateRequest struct {
	CurrentCommission int64 `json:"current_commission"`
}

func (r AmountUpdateRequest) Validate() error {
	if r.CurrentCommission < 0 {
		return errors.New("commission amount must not be negative")
	}
	return nil
}

type PaymentData struct {
	PaymentType models.PaymentType `json:"payment_type"`
	Amount      int64              `json:"amount"`
	ReceiptKey  string             `json:"receipt_key"`
}

func (d PaymentData) Validate() error {
	if !d.PaymentType.IsValid() {
		return errors.New("unknown payment type")
	}
	if d.Amount <= 0 {
		return errors.New("payment amount must be positive")
	}
	return nil
}

type PaymentView struct {
	PaymentType models.PaymentType `json:"payment_type"`
	Amount      int64              `json:"amount"`
	ReceiptKey  string             `json:"receipt_key,omitempty"`
	ReceiptURL  string             `json:"receipt_url,omitempty"`
	PaidAt      time.Time          `json:"paid_at"`
}

type CommissionView struct {
	ID                  string                  `json:"id"`
	JobOrderApplicantID string                  `json:"job_order_applicant_id"`
	ApplicantName       string                  `json:"applicant_name,omitempty"`
	JobOrderTitle       string                  `json:"job_order_title,omitempty"`
	AuthorID            string                  `json:"author_id"`
	CurrentCommission   int64                   `json:"current_commission"`
	ReceivedCommission  int64                   `json:"received_commission"`
	PendingCommission   int64                   `json:"pending_commission"`
	Status              models.CommissionStatus `json:"status"`
	StatusName          string                  `json:"status_name"`
	Payments            []PaymentView           `json:"payments"`
	CreatedAt           time.Time               `json:"created_at"`
}

func CommissionConvert(rec dbmodels.Commission) CommissionView {
	view := CommissionView{
		ID:                  rec.ID,
		JobOrderApplicantID: rec.JobOrderApplicantID,
		AuthorID:            rec.AuthorID,
		CurrentCommission:   rec.CurrentCommission,
		ReceivedCommission:  rec.TotalReceived(),
		PendingCommission:   rec.Pending(),
		Status:              rec.Status,
		StatusName:          rec.Status.ToHuman(),
		Payments:            make([]PaymentView, 0, len(rec.Details)),
		CreatedAt:           rec.CreatedAt,
	}
	for _, payment := range rec.Details {
		view.Payments = append(view.Payments, PaymentView{
			PaymentType: payment.PaymentType,
			Amount:      payment.Amount,
			ReceiptKey:  payment.ReceiptKey,
			PaidAt:      payment.PaidAt,
		})
	}
	if rec.JobOrderApplicant != nil {
		if rec.JobOrderApplicant.Applicant != nil {
			view.ApplicantName = rec.JobOrderApplicant.Applicant.GetFullName()
		}
		if rec.JobOrderApplicant.JobOrder != nil {
			view.JobOrderTitle = rec.JobOrderApplicant.JobOrder.Title
		}
	}
	return view
}

type CommissionListRequest struct {
	Filter dbmodels.CommissionFilter `json:"filter"`
}

type SummaryRowView struct {
	AuthorID      string `json:"author_id"`
	AuthorName    string `json:"author_name"`
	TotalCurrent  int64  `json:"total_current"`
	TotalReceived int64  `json:"total_received"`
	TotalPending  int64  `json:"total_pending"`
}

func SummaryConvert(rec dbmodels.CommissionSummaryRow) SummaryRowView {
	return SummaryRowView{
		AuthorID:      rec.AuthorID,
		AuthorName:    rec.AuthorName,
		TotalCurrent:  rec.TotalCurrent,
		TotalReceived: rec.TotalReceived,
		TotalPending:  rec.TotalPending(),
	}
}
