package services

import (
	"context"
	"errors"
	"fmt"

	"c4knives-backend/models"

	"gorm.io/gorm"
)

var testimonialFields = allowList[models.Testimonial]{
	"name":     field(func(t *models.Testimonial) *string { return &t.Name }),
	"role":     field(func(t *models.Testimonial) *string { return &t.Role }),
	"content":  field(func(t *models.Testimonial) *string { return &t.Content }),
	"rating":   field(func(t *models.Testimonial) *int { return &t.Rating }),
	"imageUrl": field(func(t *models.Testimonial) *string { return &t.ImageURL }),
}

type TestimonialService struct {
	DB *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{DB: db}
}

func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("services.TestimonialService.List: %w", err)
	}
	return testimonials, nil
}

func (s *TestimonialService) Get(ctx context.Context, id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	err := s.DB.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("services.TestimonialService.Get: %w", err)
	}
	return &t, nil
}

func (s *TestimonialService) Create(ctx context.Context, patch Patch) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := testimonialFields.apply(&t, patch); err != nil {
		return nil, err
	}
	if err := validateRecord(&t); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("services.TestimonialService.Create: %w", err)
	}
	return &t, nil
}

func (s *TestimonialService) Update(ctx context.Context, id uint, patch Patch) (*models.Testimonial, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := testimonialFields.apply(t, patch); err != nil {
		return nil, err
	}
	if err := validateRecord(t); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Save(t).Error; err != nil {
		return nil, fmt.Errorf("services.TestimonialService.Update: %w", err)
	}
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		return fmt.Errorf("services.TestimonialService.Delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
