package joborder

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "ats-backend/models/db"
)

type favKey struct {
	jobOrderID string
	userID     string
}

type fakeJobOrderStore struct {
	favorites map[favKey]bool
}

func (f *fakeJobOrderStore) Create(rec dbmodels.JobOrder) (string, error) { return rec.ID, nil }
func (f *fakeJobOrderStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeJobOrderStore) GetByID(id, userID string) (*dbmodels.JobOrderExt, error) {
	return nil, nil
}
func (f *fakeJobOrderStore) List(userID string, filter dbmodels.JobOrderFilter, page, limit int) ([]dbmodels.JobOrderExt, error) {
	return nil, nil
}
func (f *fakeJobOrderStore) ListCount(userID string, filter dbmodels.JobOrderFilter) (int64, error) {
	return 0, nil
}
func (f *fakeJobOrderStore) CandidateCounts() (map[string]int64, error) { return nil, nil }

// SetFavorite is idempotent, mirroring the unique (job order, user) pair in
// the table.
func (f *fakeJobOrderStore) SetFavorite(jobOrderID, userID string) error {
	f.favorites[favKey{jobOrderID, userID}] = true
	return nil
}

func (f *fakeJobOrderStore) RemoveFavorite(jobOrderID, userID string) error {
	delete(f.favorites, favKey{jobOrderID, userID})
	return nil
}

func (f *fakeJobOrderStore) IsFavorite(jobOrderID, userID string) (bool, error) {
	return f.favorites[favKey{jobOrderID, userID}], nil
}

func TestToggleFavorite(t *testing.T) {
	store := &fakeJobOrderStore{favorites: map[favKey]bool{}}
	handler := impl{store: store}

	selected, err := handler.ToggleFavorite("jo-1", "u-1")
	require.Nil(t, err)
	require.True(t, selected)

	t.Run(`toggling twice restores the original state`, func(t *testing.T) {
		selected, err := handler.ToggleFavorite("jo-1", "u-1")
		require.Nil(t, err)
		require.False(t, selected)
		require.Empty(t, store.favorites)
	})

	t.Run(`favorites are scoped per user`, func(t *testing.T) {
		_, err := handler.ToggleFavorite("jo-1", "u-1")
		require.Nil(t, err)
		selected, err := handler.ToggleFavorite("jo-1", "u-2")
		require.Nil(t, err)
		require.True(t, selected)
		require.Len(t, store.favorites, 2)
	})
}
