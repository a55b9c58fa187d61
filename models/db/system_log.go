package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"ats-backend/models"
)

// SystemLog is the append-only audit record written by handlers on every
// create/update/delete.
type SystemLog struct {
	BaseModel
	UserID     *string          `gorm:"type:varchar(36);index"`
	UserName   string           `gorm:"type:varchar(255)"`
	Action     models.LogAction `gorm:"type:varchar(20)"`
	EntityType string           `gorm:"type:varchar(50);index"`
	EntityID   string           `gorm:"type:varchar(36);index"`
	Changes    EntityChanges    `gorm:"type:jsonb"`
}

type EntityChanges struct {
	Description string         `json:"description"`
	Data        []FieldChanges `json:"data"`
}

type FieldChanges struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// Append records a field change, skipping no-ops.
func (j *EntityChanges) Append(field string, oldValue, newValue any) {
	if oldValue == newValue {
		return
	}
	j.Data = append(j.Data, FieldChanges{
		Field:    field,
		OldValue: oldValue,
		NewValue: newValue,
	})
}

func (j EntityChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntityChanges) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			raw = []byte(s)
		}
	}
	if len(raw) == 0 {
		*j = EntityChanges{}
		return nil
	}
	if err := json.Unmarshal(raw, j); err != nil {
		// A malformed payload must not break the log listing.
		*j = EntityChanges{Description: "error displaying details"}
	}
	return nil
}

type SystemLogFilter struct {
	UserID     string `json:"user_id"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
}
