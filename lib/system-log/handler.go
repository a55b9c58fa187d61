package systemlog

import (
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	"ats-backend/db"
	systemlogstore "ats-backend/lib/system-log/store"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	syslogapimodels "ats-backend/models/api/syslog"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Write(userID, userName string, action models.LogAction, entityType, entityID string, changes dbmodels.EntityChanges)
	List(filter dbmodels.SystemLogFilter, page, limit int) ([]syslogapimodels.LogView, int64, error)
	CheckAccess(password string) bool
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: systemlogstore.NewInstance(db.DB),
	}
}

type impl struct {
	store systemlogstore.Provider
}

// Write appends an audit record. The log is best-effort: a failed write is
// reported but never fails the mutation it describes.
func (i impl) Write(userID, userName string, action models.LogAction, entityType, entityID string, changes dbmodels.EntityChanges) {
	rec := dbmodels.SystemLog{
		UserName:   userName,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    changes,
	}
	if userID != "" {
		rec.UserID = &userID
	}
	if rec.UserName == "" {
		rec.UserName = models.SystemUser
	}
	err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).
			WithField("entity_type", entityType).
			WithField("entity_id", entityID).
			Error("audit log write error")
	}
}

func (i impl) List(filter dbmodels.SystemLogFilter, page, limit int) ([]syslogapimodels.LogView, int64, error) {
	list, err := i.store.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]syslogapimodels.LogView, 0, len(list))
	for _, rec := range list {
		result = append(result, syslogapimodels.LogConvert(rec))
	}
	return result, count, nil
}

// CheckAccess verifies the shared audit-log page password against the bcrypt
// hash from the configuration.
func (i impl) CheckAccess(password string) bool {
	hash := config.Conf.LogAccess.PasswordHash
	if hash == "" {
		return false
	}
	return authutils.CheckPassword(password, hash)
}
