package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID                   uint                        `gorm:"primaryKey" json:"id"`
	Name                 string                      `gorm:"size:255;not null" json:"name" validate:"required"`
	SequenceID           int                         `gorm:"column:sequence_id" json:"sequenceId"`
	Description          string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	Price                float64                     `json:"price" validate:"gte=0"`
	IsCurrentlyAvailable bool                        `gorm:"column:is_currently_available" json:"isCurrentlyAvailable"`
	ImageURL             string                      `gorm:"column:image_url;size:1024;not null" json:"imageUrl" validate:"required"`
	Tags                 datatypes.JSONSlice[string] `gorm:"type:json" json:"tags"`
	CreatedAt            time.Time                   `gorm:"index" json:"createdAt"`
}
