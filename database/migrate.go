package database

import (
	"trustfluence_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate применяет схему через AutoMigrate.
// Порядок важен: ссылающиеся таблицы после тех, на которые они ссылаются.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.ProspectUser{},
		&models.User{},
		&models.RefreshToken{},
		&models.Influencer{},
		&models.InfluencerHandle{},
		&models.Review{},
		&models.ReviewReport{},
		&models.UserInfluencerView{},
	)
}
