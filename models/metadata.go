package models

// MetadataID is the fixed key of the one site metadata row.
const MetadataID uint = 1

// Metadata holds site-wide contact details and the public knife counter.
type Metadata struct {
	ID           uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	KnifeCounter int    `gorm:"not null" json:"knifeCounter" validate:"gte=0"`
	Email        string `gorm:"size:150;not null" json:"email"`
	Phone        string `gorm:"size:50;not null" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`
	Instagram    string `gorm:"size:255;not null" json:"instagram"`
	Facebook     string `gorm:"size:255;not null" json:"facebook"`
	Youtube      string `gorm:"size:255;not null" json:"youtube"`
}

// TableName keeps the singular table name; "metadata" has no plural.
func (Metadata) TableName() string {
	return "metadata"
}
