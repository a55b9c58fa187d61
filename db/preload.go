package db

import (
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	usersstore "ats-backend/lib/users/store"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

func InitPreload() {
	addAdministrator()
}

func addAdministrator() {
	if config.Conf.Admin.Email == "" {
		log.Warn("administrator not seeded, ADMIN_EMAIL is not set")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("administrator seeding error")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("administrator seeding error")
		return
	}
	userName, err := store.NextUserName()
	if err != nil {
		log.WithError(err).Error("administrator seeding error")
		return
	}
	rec := dbmodels.User{
		Role:      models.UserRoleAdministrator,
		Password:  hash,
		UserName:  userName,
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Email:     config.Conf.Admin.Email,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("administrator seeding error")
	}
}
