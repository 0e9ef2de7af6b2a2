package services

import (
	"context"
	"fmt"
	"strings"

	"c4knives-backend/models"

	"gorm.io/gorm"
)

var contactFields = allowList[models.ContactMessage]{
	"name":    field(func(m *models.ContactMessage) *string { return &m.Name }),
	"email":   field(func(m *models.ContactMessage) *string { return &m.Email }),
	"message": field(func(m *models.ContactMessage) *string { return &m.Message }),
}

// ContactService stores messages from the public contact form. Only presence
// of name, email and message is checked here; format and length rules belong
// to the form.
type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (s *ContactService) Create(ctx context.Context, patch Patch) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := contactFields.apply(&msg, patch); err != nil {
		return nil, err
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if err := validateRecord(&msg); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("services.ContactService.Create: %w", err)
	}
	return &msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("services.ContactService.List: %w", err)
	}
	return messages, nil
}
