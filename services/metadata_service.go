package services

import (
	"context"
	"errors"
	"fmt"

	"c4knives-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var metadataFields = allowList[models.Metadata]{
	"knifeCounter": field(func(m *models.Metadata) *int { return &m.KnifeCounter }),
	"email":        field(func(m *models.Metadata) *string { return &m.Email }),
	"phone":        field(func(m *models.Metadata) *string { return &m.Phone }),
	"address":      field(func(m *models.Metadata) *string { return &m.Address }),
	"instagram":    field(func(m *models.Metadata) *string { return &m.Instagram }),
	"facebook":     field(func(m *models.Metadata) *string { return &m.Facebook }),
	"youtube":      field(func(m *models.Metadata) *string { return &m.Youtube }),
}

// MetadataService owns the single site metadata row, keyed by models.MetadataID.
type MetadataService struct {
	DB *gorm.DB
}

func NewMetadataService(db *gorm.DB) *MetadataService {
	return &MetadataService{DB: db}
}

func (s *MetadataService) find(ctx context.Context) (*models.Metadata, error) {
	var m models.Metadata
	err := s.DB.WithContext(ctx).First(&m, models.MetadataID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Get returns the metadata row, creating it with empty defaults on first use.
func (s *MetadataService) Get(ctx context.Context) (*models.Metadata, error) {
	const op = "services.MetadataService.Get"

	m, err := s.find(ctx)
	if err == nil {
		return m, nil
	}
	if !IsNotFound(err) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	def := models.Metadata{ID: models.MetadataID}
	if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&def).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// Re-read: a concurrent first request may have won the insert.
	m, err = s.find(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// Update merges patch into the metadata row and upserts it by its fixed id.
func (s *MetadataService) Update(ctx context.Context, patch Patch) (*models.Metadata, error) {
	const op = "services.MetadataService.Update"

	m, err := s.find(ctx)
	if IsNotFound(err) {
		m, err = &models.Metadata{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := metadataFields.apply(m, patch); err != nil {
		return nil, err
	}
	m.ID = models.MetadataID
	if err := validateRecord(m); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(m).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}
