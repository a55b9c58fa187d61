package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ats-backend/models"
)

func TestPaymentDetailsScan(t *testing.T) {
	t.Run(`list payload`, func(t *testing.T) {
		raw := `[{"payment_type":"30day","amount":500},{"payment_type":"60day","amount":300}]`
		var details PaymentDetails
		err := details.Scan([]byte(raw))
		require.Nil(t, err)
		require.Len(t, details, 2)
		require.Equal(t, models.PaymentType30Day, details[0].PaymentType)
		require.Equal(t, int64(800), details.Total())
	})

	t.Run(`legacy single object payload`, func(t *testing.T) {
		raw := `{"payment_type":"90day","amount":1000,"receipt_key":"receipts/abc.pdf"}`
		var details PaymentDetails
		err := details.Scan([]byte(raw))
		require.Nil(t, err)
		require.Len(t, details, 1)
		require.Equal(t, models.PaymentType90Day, details[0].PaymentType)
		require.Equal(t, "receipts/abc.pdf", details[0].ReceiptKey)
	})

	t.Run(`string payload`, func(t *testing.T) {
		var details PaymentDetails
		err := details.Scan(`[{"payment_type":"30day","amount":42}]`)
		require.Nil(t, err)
		require.Len(t, details, 1)
	})

	t.Run(`garbage payload never errors`, func(t *testing.T) {
		var details PaymentDetails
		err := details.Scan([]byte(`{broken`))
		require.Nil(t, err)
		require.Nil(t, details)
	})

	t.Run(`empty payload`, func(t *testing.T) {
		var details PaymentDetails
		err := details.Scan([]byte{})
		require.Nil(t, err)
		require.Nil(t, details)
	})
}

func TestCommissionTotals(t *testing.T) {
	t.Run(`received derived from details`, func(t *testing.T) {
		c := Commission{
			CurrentCommission:  1000,
			ReceivedCommission: 999, // stale column value, details win
			Details: PaymentDetails{
				{PaymentType: models.PaymentType30Day, Amount: 400, PaidAt: time.Now()},
				{PaymentType: models.PaymentType60Day, Amount: 100, PaidAt: time.Now()},
			},
		}
		require.Equal(t, int64(500), c.TotalReceived())
		require.Equal(t, int64(500), c.Pending())
	})

	t.Run(`column fallback when details are empty`, func(t *testing.T) {
		c := Commission{
			CurrentCommission:  1000,
			ReceivedCommission: 250,
		}
		require.Equal(t, int64(250), c.TotalReceived())
		require.Equal(t, int64(750), c.Pending())
	})

	t.Run(`pending may go negative on over-payment`, func(t *testing.T) {
		c := Commission{
			CurrentCommission: 300,
			Details: PaymentDetails{
				{PaymentType: models.PaymentType30Day, Amount: 500},
			},
		}
		require.Equal(t, int64(-200), c.Pending())
	})
}
