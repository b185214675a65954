package store

import (
	"context"
	"time"

	"github.com/estatedesk/lead-notification-service/internal/domain"
	"gorm.io/gorm"
)

// LeadRepository persists leads created through the integration webhook.
type LeadRepository struct {
	DB *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (repo *LeadRepository) CreateLead(ctx context.Context, lead *domain.Lead) error {
	row := Lead{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Interest:  lead.Interest,
		Status:    lead.Status,
		CreatedAt: lead.CreatedAt,
	}
	if err := repo.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	lead.CreatedAt = row.CreatedAt
	return nil
}

// APIKeyRepository authenticates integration bearer keys.
type APIKeyRepository struct {
	DB *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{DB: db}
}

func (repo *APIKeyRepository) FindActiveKey(ctx context.Context, key string) (*domain.APIKey, error) {
	var row APIKey
	result := repo.DB.WithContext(ctx).
		Where("key = ? AND active = true", key).
		First(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	return &domain.APIKey{Key: row.Key, Source: row.Source, Active: row.Active}, nil
}

func (repo *APIKeyRepository) TouchKey(ctx context.Context, key string) error {
	now := time.Now()
	return repo.DB.WithContext(ctx).
		Model(&APIKey{}).
		Where("key = ?", key).
		Update("last_used_at", now).Error
}
