package store

import (
	"context"
	"encoding/json"

	"github.com/estatedesk/lead-notification-service/internal/domain"
	"gorm.io/gorm"
)

// SettingsRepository reads notification settings rows.
type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// LoadSettings fetches every notification_settings row and parses the blobs.
// Absent rows simply leave defaults in place, so a fresh database dispatches
// with the hardcoded admin list and default toggles.
func (repo *SettingsRepository) LoadSettings(ctx context.Context) (domain.Settings, error) {
	var rows []NotificationSetting
	result := repo.DB.WithContext(ctx).
		Where("setting_name IN ?", []string{
			domain.SettingEmailNotifications,
			domain.SettingRecipients,
			domain.SettingWhatsAppNotifications,
		}).
		Find(&rows)
	if result.Error != nil {
		return domain.SettingsFromRaw(nil), result.Error
	}

	raw := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		raw[row.SettingName] = json.RawMessage(row.Value)
	}
	return domain.SettingsFromRaw(raw), nil
}
