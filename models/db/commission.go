package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"ats-backend/models"
)

type Commission struct {
	SoftDeleteModel
	JobOrderApplicantID string             `gorm:"type:varchar(36);uniqueIndex"`
	JobOrderApplicant   *JobOrderApplicant `gorm:"foreignKey:JobOrderApplicantID"`
	AuthorID            string             `gorm:"type:varchar(36);index"`
	Author              *User              `gorm:"foreignKey:AuthorID"`
	CurrentCommission   int64              // total owed
	ReceivedCommission  int64              // derived, kept in sync with Details on every payment
	Details             PaymentDetails     `gorm:"type:jsonb"`
	Status              models.CommissionStatus `gorm:"type:varchar(20)"`
}

// TotalReceived sums the recorded payments. When the stored details could not
// be parsed (legacy rows with broken payloads scan to nil) the persisted
// received_commission column is the source of truth instead.
func (c Commission) TotalReceived() int64 {
	if len(c.Details) == 0 {
		return c.ReceivedCommission
	}
	return c.Details.Total()
}

// Pending may go negative on over-payment; that is reported, not prevented.
func (c Commission) Pending() int64 {
	return c.CurrentCommission - c.TotalReceived()
}

type PaymentRecord struct {
	PaymentType models.PaymentType `json:"payment_type"`
	Amount      int64              `json:"amount"`
	ReceiptKey  string             `json:"receipt_key"`
	PaidAt      time.Time          `json:"paid_at"`
}

// PaymentDetails is an append-only payment list stored as jsonb. Legacy rows
// may hold a single payment object instead of a list; Scan accepts both shapes
// and normalizes to a slice.
type PaymentDetails []PaymentRecord

func (j PaymentDetails) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *PaymentDetails) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			raw = []byte(s)
		}
	}
	if len(raw) == 0 {
		*j = nil
		return nil
	}
	var list []PaymentRecord
	if err := json.Unmarshal(raw, &list); err == nil {
		*j = list
		return nil
	}
	var single PaymentRecord
	if err := json.Unmarshal(raw, &single); err == nil {
		*j = PaymentDetails{single}
		return nil
	}
	// Unparseable details never fail a read, the row stays usable via the
	// received_commission column.
	*j = nil
	return nil
}

func (j PaymentDetails) Total() (total int64) {
	for _, rec := range j {
		total += rec.Amount
	}
	return total
}

type CommissionFilter struct {
	AuthorID   string `json:"author_id"`
	JobOrderID string `json:"job_order_id"`
	Search     string `json:"search"`
}

// CommissionSummaryRow is the per-recruiter aggregation used by the summary
// report and the XLS export.
type CommissionSummaryRow struct {
	AuthorID      string
	AuthorName    string
	TotalCurrent  int64
	TotalReceived int64
}

func (r CommissionSummaryRow) TotalPending() int64 {
	return r.TotalCurrent - r.TotalReceived
}
