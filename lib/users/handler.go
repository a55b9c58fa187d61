package users

import (
	"github.com/pkg/errors"

	"ats-backend/db"
	usersstore "ats-backend/lib/users/store"
	dbmodels "ats-backend/models/db"
	userapimodels "ats-backend/models/api/user"
)

type Provider interface {
	List(filter dbmodels.UserFilter) ([]userapimodels.UserView, error)
	GetByID(id string) (userapimodels.UserView, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) List(filter dbmodels.UserFilter) ([]userapimodels.UserView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userapimodels.UserConvert(rec))
	}
	return result, nil
}

func (i impl) GetByID(id string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, errors.New("user not found")
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}
