package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name" validate:"required"`
	Email     string    `gorm:"size:255;not null" json:"email" validate:"required"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
