package models

import "time"

type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name" validate:"required"`
	Role      string    `gorm:"size:255;not null" json:"role" validate:"required"`
	Content   string    `gorm:"type:text;not null" json:"content" validate:"required"`
	Rating    int       `gorm:"not null" json:"rating" validate:"min=1,max=5"`
	ImageURL  string    `gorm:"column:image_url;size:1024" json:"imageUrl,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
