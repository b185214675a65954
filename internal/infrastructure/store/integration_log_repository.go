package store

import (
	"context"

	"github.com/estatedesk/lead-notification-service/internal/domain/port/store"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IntegrationLogRepository writes dispatch audit rows.
type IntegrationLogRepository struct {
	DB *gorm.DB
}

func NewIntegrationLogRepository(db *gorm.DB) *IntegrationLogRepository {
	return &IntegrationLogRepository{DB: db}
}

func (repo *IntegrationLogRepository) SaveLog(ctx context.Context, entry store.IntegrationLogEntry) error {
	row := IntegrationLog{
		ID:              entry.ID,
		IntegrationType: entry.IntegrationType,
		LeadID:          entry.LeadID,
		Request:         datatypes.JSON(entry.Request),
		Response:        datatypes.JSON(entry.Response),
		Error:           entry.Error,
	}
	return repo.DB.WithContext(ctx).Create(&row).Error
}
