package models

import "time"

// SpotlightID is the fixed key of the one spotlight row.
const SpotlightID uint = 1

type Spotlight struct {
	ID          uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title" validate:"required"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required"`
	ImageURL    string    `gorm:"column:image_url;size:1024" json:"imageUrl"`
	VideoURL    string    `gorm:"column:video_url;size:1024" json:"videoUrl"`
	ProductID   *uint     `gorm:"column:product_id" json:"productId"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
