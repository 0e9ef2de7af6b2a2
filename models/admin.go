package models

// Admin is the single administrator identity. PasswordHash is never serialized.
type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}
