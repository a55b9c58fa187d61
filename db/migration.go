package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "ats-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration error for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Client{}); err != nil {
		return errors.Wrap(err, "migration error for Client")
	}
	if err := DB.AutoMigrate(&dbmodels.JobOrder{}); err != nil {
		return errors.Wrap(err, "migration error for JobOrder")
	}
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "migration error for Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.JobOrderApplicant{}); err != nil {
		return errors.Wrap(err, "migration error for JobOrderApplicant")
	}
	if err := DB.AutoMigrate(&dbmodels.Commission{}); err != nil {
		return errors.Wrap(err, "migration error for Commission")
	}
	if err := DB.AutoMigrate(&dbmodels.PipelineCard{}); err != nil {
		return errors.Wrap(err, "migration error for PipelineCard")
	}
	if err := DB.AutoMigrate(&dbmodels.PipelineCardApplicant{}); err != nil {
		return errors.Wrap(err, "migration error for PipelineCardApplicant")
	}
	if err := DB.AutoMigrate(&dbmodels.Favorite{}); err != nil {
		return errors.Wrap(err, "migration error for Favorite")
	}
	if err := DB.AutoMigrate(&dbmodels.SystemLog{}); err != nil {
		return errors.Wrap(err, "migration error for SystemLog")
	}
	log.Info("migrations finished")
	return nil
}
