package dbmodels

type Favorite struct {
	BaseModel
	JobOrderID string `gorm:"type:varchar(36);uniqueIndex:idx_user_fav"`
	UserID     string `gorm:"type:varchar(36);uniqueIndex:idx_user_fav"`
	Selected   bool
}
