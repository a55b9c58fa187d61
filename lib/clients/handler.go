package clients

import (
	"github.com/pkg/errors"

	"ats-backend/db"
	clientsstore "ats-backend/lib/clients/store"
	systemlog "ats-backend/lib/system-log"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	"ats-backend/models"
	clientapimodels "ats-backend/models/api/client"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	Create(userID, userName string, data clientapimodels.ClientData) (id string, err error)
	Update(userID, userName, id string, data clientapimodels.ClientData) error
	GetByID(id string) (clientapimodels.ClientView, error)
	List(filter dbmodels.ClientFilter) ([]clientapimodels.ClientView, error)
	Delete(userID, userName, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: clientsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store clientsstore.Provider
}

func (i impl) Create(userID, userName string, data clientapimodels.ClientData) (string, error) {
	rec := dbmodels.Client{
		AuthorID:      userID,
		Company:       data.Company,
		ContactPerson: data.ContactPerson,
		ContactEmail:  data.ContactEmail,
		ContactPhone:  data.ContactPhone,
		Address:       data.Address,
		Website:       data.Website,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionCreated, models.EntityTypeClient, id,
		dbmodels.EntityChanges{Description: "client created: " + data.Company})
	connectionhub.Instance.Broadcast(models.EntityTypeClient, string(models.LogActionCreated), id)
	return id, nil
}

func (i impl) Update(userID, userName, id string, data clientapimodels.ClientData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("client not found")
	}
	updMap := map[string]interface{}{
		"company":        data.Company,
		"contact_person": data.ContactPerson,
		"contact_email":  data.ContactEmail,
		"contact_phone":  data.ContactPhone,
		"address":        data.Address,
		"website":        data.Website,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{Description: "client updated"}
	changes.Append("company", rec.Company, data.Company)
	changes.Append("contact_person", rec.ContactPerson, data.ContactPerson)
	changes.Append("contact_email", rec.ContactEmail, data.ContactEmail)
	changes.Append("contact_phone", rec.ContactPhone, data.ContactPhone)
	systemlog.Instance.Write(userID, userName, models.LogActionUpdated, models.EntityTypeClient, id, changes)
	connectionhub.Instance.Broadcast(models.EntityTypeClient, string(models.LogActionUpdated), id)
	return nil
}

func (i impl) GetByID(id string) (clientapimodels.ClientView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return clientapimodels.ClientView{}, err
	}
	if rec == nil {
		return clientapimodels.ClientView{}, errors.New("client not found")
	}
	return clientapimodels.ClientConvert(*rec), nil
}

func (i impl) List(filter dbmodels.ClientFilter) ([]clientapimodels.ClientView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]clientapimodels.ClientView, 0, len(list))
	for _, rec := range list {
		result = append(result, clientapimodels.ClientConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(userID, userName, id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	systemlog.Instance.Write(userID, userName, models.LogActionDeleted, models.EntityTypeClient, id,
		dbmodels.EntityChanges{Description: "client deleted"})
	connectionhub.Instance.Broadcast(models.EntityTypeClient, string(models.LogActionDeleted), id)
	return nil
}
