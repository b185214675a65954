package store

import (
	"context"

	"gorm.io/gorm"
)

// UserRepository reads manager emails from the role and profile tables
// maintained by the main CRM.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (repo *UserRepository) ListManagerEmails(ctx context.Context) ([]string, error) {
	var emails []string
	result := repo.DB.WithContext(ctx).
		Model(&Profile{}).
		Joins("JOIN user_roles ON user_roles.user_id = profiles.id").
		Where("user_roles.role = ?", "manager").
		Where("profiles.email <> ''").
		Pluck("profiles.email", &emails)
	if result.Error != nil {
		return nil, result.Error
	}
	return emails, nil
}
