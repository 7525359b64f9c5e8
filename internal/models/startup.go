package models

import "gorm.io/datatypes"

type Startup struct {
	BaseModel
	Name        string                      `gorm:"size:200;not null" json:"name"`
	Industry    string                      `gorm:"size:120;not null;index" json:"industry"`
	Description string                      `gorm:"type:text" json:"description"`
	FounderID   string                      `gorm:"type:varchar(36);not null;index" json:"founderId"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
}
