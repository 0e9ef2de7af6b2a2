package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"c4knives-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Credentials seeded on first boot.
const (
	DefaultAdminID       uint = 1
	DefaultAdminUsername      = "admin"
	DefaultAdminPassword      = "admin123"
)

// PasswordCost is the bcrypt work factor for admin passwords.
const PasswordCost = bcrypt.DefaultCost

// AdminService is the credential store for the single administrator.
type AdminService struct {
	DB  *gorm.DB
	log *slog.Logger
}

func NewAdminService(db *gorm.DB, log *slog.Logger) *AdminService {
	return &AdminService{DB: db, log: log}
}

// GetByUsername matches the username exactly, including case.
func (s *AdminService) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	const op = "services.AdminService.GetByUsername"

	var admin models.Admin
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// MySQL's default collation compares case-insensitively.
	if admin.Username != username {
		return nil, ErrNotFound
	}
	return &admin, nil
}

func (s *AdminService) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	const op = "services.AdminService.GetByID"

	var admin models.Admin
	err := s.DB.WithContext(ctx).First(&admin, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &admin, nil
}

func (s *AdminService) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("services.AdminService.Count: %w", err)
	}
	return n, nil
}

// EnsureDefault creates the default administrator when no admin exists and
// never touches an existing one. The row is written under DefaultAdminID with
// ON CONFLICT DO NOTHING, so racing processes end up with a single admin.
func (s *AdminService) EnsureDefault(ctx context.Context) (bool, error) {
	const op = "services.AdminService.EnsureDefault"

	n, err := s.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), PasswordCost)
	if err != nil {
		return false, fmt.Errorf("%s: hash default password: %w", op, err)
	}

	admin := models.Admin{
		ID:           DefaultAdminID,
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
	}
	res := s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&admin)
	if res.Error != nil {
		return false, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	s.log.Info("initial admin account created", slog.String("username", admin.Username))
	return true, nil
}
