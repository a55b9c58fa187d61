package dbmodels

type Client struct {
	SoftDeleteModel
	AuthorID      string `gorm:"type:varchar(36)"`
	Author        *User  `gorm:"foreignKey:AuthorID"`
	Company       string `gorm:"type:varchar(255)"`
	ContactPerson string `gorm:"type:varchar(255)"`
	ContactEmail  string `gorm:"type:varchar(255)"`
	ContactPhone  string `gorm:"type:varchar(50)"`
	Address       string
	Website       string `gorm:"type:varchar(255)"`
}

type ClientFilter struct {
	Search string `json:"search"`
}
