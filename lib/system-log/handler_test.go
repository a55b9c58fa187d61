package systemlog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ats-backend/config"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

type fakeLogStore struct {
	recs []dbmodels.SystemLog
}

func (f *fakeLogStore) Create(rec dbmodels.SystemLog) error {
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeLogStore) List(filter dbmodels.SystemLogFilter, page, limit int) ([]dbmodels.SystemLog, error) {
	return f.recs, nil
}

func (f *fakeLogStore) ListCount(filter dbmodels.SystemLogFilter) (int64, error) {
	return int64(len(f.recs)), nil
}

func TestWrite(t *testing.T) {
	store := &fakeLogStore{}
	handler := impl{store: store}

	handler.Write("u-1", "Recruiter01", models.LogActionCreated, models.EntityTypeClient, "cli-1",
		dbmodels.EntityChanges{Description: "client created"})
	require.Len(t, store.recs, 1)
	require.Equal(t, "u-1", *store.recs[0].UserID)
	require.Equal(t, "Recruiter01", store.recs[0].UserName)

	t.Run(`anonymous writes fall back to the system user`, func(t *testing.T) {
		handler.Write("", "", models.LogActionUpdated, models.EntityTypeJobOrder, "jo-1",
			dbmodels.EntityChanges{Description: "job order updated"})
		rec := store.recs[len(store.recs)-1]
		require.Nil(t, rec.UserID)
		require.Equal(t, models.SystemUser, rec.UserName)
	})
}

func TestCheckAccess(t *testing.T) {
	conf := new(config.Configuration)
	config.Conf = conf
	handler := impl{store: &fakeLogStore{}}

	t.Run(`no hash configured denies everyone`, func(t *testing.T) {
		require.False(t, handler.CheckAccess("anything"))
	})

	hash, err := authutils.HashPassword("view-logs")
	require.Nil(t, err)
	conf.LogAccess.PasswordHash = hash

	t.Run(`correct password`, func(t *testing.T) {
		require.True(t, handler.CheckAccess("view-logs"))
	})

	t.Run(`wrong password`, func(t *testing.T) {
		require.False(t, handler.CheckAccess("guess"))
	})
}
