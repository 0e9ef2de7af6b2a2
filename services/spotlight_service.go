package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"c4knives-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var spotlightFields = allowList[models.Spotlight]{
	"title":       field(func(s *models.Spotlight) *string { return &s.Title }),
	"description": field(func(s *models.Spotlight) *string { return &s.Description }),
	"imageUrl":    field(func(s *models.Spotlight) *string { return &s.ImageURL }),
	"videoUrl":    field(func(s *models.Spotlight) *string { return &s.VideoURL }),
	"productId":   field(func(s *models.Spotlight) **uint { return &s.ProductID }),
}

// SpotlightService owns the single featured spotlight, keyed by models.SpotlightID.
type SpotlightService struct {
	DB       *gorm.DB
	products *ProductService
	now      func() time.Time
}

func NewSpotlightService(db *gorm.DB, products *ProductService) *SpotlightService {
	return &SpotlightService{DB: db, products: products, now: time.Now}
}

// Get returns the spotlight, or nil when none has been published yet.
func (s *SpotlightService) Get(ctx context.Context) (*models.Spotlight, error) {
	var spot models.Spotlight
	err := s.DB.WithContext(ctx).First(&spot, models.SpotlightID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("services.SpotlightService.Get: %w", err)
	}
	return &spot, nil
}

// Update merges patch into the current spotlight, or into an empty one when
// none exists, and upserts it by its fixed id.
func (s *SpotlightService) Update(ctx context.Context, patch Patch) (*models.Spotlight, error) {
	const op = "services.SpotlightService.Update"

	spot, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if spot == nil {
		spot = &models.Spotlight{}
	}

	if err := spotlightFields.apply(spot, patch); err != nil {
		return nil, err
	}
	spot.ID = models.SpotlightID
	if err := validateRecord(spot); err != nil {
		return nil, err
	}
	// Only a link the client sends is checked; a stored one may outlive its product.
	if _, sent := patch["productId"]; sent && spot.ProductID != nil {
		ok, err := s.products.Exists(ctx, *spot.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, newValidationError("productId", "does not name a product")
		}
	}
	spot.UpdatedAt = s.now()

	if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(spot).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return spot, nil
}
