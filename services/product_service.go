package services

import (
	"context"
	"errors"
	"fmt"

	"c4knives-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var productFields = allowList[models.Product]{
	"name":                 field(func(p *models.Product) *string { return &p.Name }),
	"description":          field(func(p *models.Product) *string { return &p.Description }),
	"price":                field(func(p *models.Product) *float64 { return &p.Price }),
	"imageUrl":             field(func(p *models.Product) *string { return &p.ImageURL }),
	"tags":                 field(func(p *models.Product) *datatypes.JSONSlice[string] { return &p.Tags }),
	"sequenceId":           field(func(p *models.Product) *int { return &p.SequenceID }),
	"isCurrentlyAvailable": field(func(p *models.Product) *bool { return &p.IsCurrentlyAvailable }),
}

type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

// List returns every product, newest first.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("services.ProductService.List: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.DB.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("services.ProductService.Get: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Create(ctx context.Context, patch Patch) (*models.Product, error) {
	const op = "services.ProductService.Create"

	var product models.Product
	if err := productFields.apply(&product, patch); err != nil {
		return nil, err
	}
	normalizeTags(&product)
	if err := validateRecord(&product); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &product, nil
}

// Update merges the recognized fields of patch into product id.
func (s *ProductService) Update(ctx context.Context, id uint, patch Patch) (*models.Product, error) {
	const op = "services.ProductService.Update"

	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := productFields.apply(product, patch); err != nil {
		return nil, err
	}
	normalizeTags(product)
	if err := validateRecord(product); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return product, nil
}

// Delete removes product id and unlinks it from the spotlight in one transaction.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	const op = "services.ProductService.Delete"

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.Spotlight{}).Where("product_id = ?", id).Update("product_id", nil).Error
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *ProductService) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("services.ProductService.Exists: %w", err)
	}
	return n > 0, nil
}

func normalizeTags(p *models.Product) {
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
}
