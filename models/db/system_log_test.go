package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntityChangesScan(t *testing.T) {
	t.Run(`valid payload`, func(t *testing.T) {
		raw := `{"description":"job order updated","data":[{"field":"status","old_value":"KICKOFF","new_value":"SOURCING"}]}`
		var changes EntityChanges
		err := changes.Scan([]byte(raw))
		require.Nil(t, err)
		require.Equal(t, "job order updated", changes.Description)
		require.Len(t, changes.Data, 1)
		require.Equal(t, "status", changes.Data[0].Field)
	})

	t.Run(`malformed payload yields placeholder`, func(t *testing.T) {
		var changes EntityChanges
		err := changes.Scan([]byte(`{broken`))
		require.Nil(t, err)
		require.Equal(t, "error displaying details", changes.Description)
	})

	t.Run(`empty payload`, func(t *testing.T) {
		var changes EntityChanges
		err := changes.Scan([]byte{})
		require.Nil(t, err)
		require.Equal(t, EntityChanges{}, changes)
	})
}

func TestEntityChangesAppend(t *testing.T) {
	changes := EntityChanges{Description: "client updated"}
	changes.Append("company", "Acme", "Acme Inc")
	changes.Append("contact_email", "a@acme.io", "a@acme.io") // unchanged, skipped
	changes.Append("contact_phone", "", "555-0101")
	require.Len(t, changes.Data, 2)
	require.Equal(t, "company", changes.Data[0].Field)
	require.Equal(t, "contact_phone", changes.Data[1].Field)
}
