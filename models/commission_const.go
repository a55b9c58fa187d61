package models

// PaymentType identifies the contractual installment a commission payment
// belongs to (30/60/90 days after the candidate start date).
type PaymentType string

const (
	PaymentType30Day PaymentType = "30day"
	PaymentType60Day PaymentType = "60day"
	PaymentType90Day PaymentType = "90day"
)

var paymentTypeHumanName = map[PaymentType]string{
	PaymentType30Day: "30 days",
	PaymentType60Day: "60 days",
	PaymentType90Day: "90 days",
}

func (p PaymentType) ToHuman() string {
	if human, exist := paymentTypeHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p PaymentType) IsValid() bool {
	_, exist := paymentTypeHumanName[p]
	return exist
}

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "PENDING"
	CommissionStatusPartial CommissionStatus = "PARTIAL"
	CommissionStatusPaid    CommissionStatus = "PAID"
)

var commissionStatusHumanName = map[CommissionStatus]string{
	CommissionStatusPending: "Pending",
	CommissionStatusPartial: "Partially paid",
	CommissionStatusPaid:    "Paid",
}

func (s CommissionStatus) ToHuman() string {
	if human, exist := commissionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
