package repositories

import (
	"time"

	"trustfluence_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ViewRepository interface {
	// Upsert по составному ключу (user_id, influencer_id): одна строка на
	// пару, конфликт только освежает last_seen.
	Upsert(db *gorm.DB, userID, influencerID string) error
	ListByUser(db *gorm.DB, userID string, page, pageSize int) ([]models.UserInfluencerView, int64, error)
}

type ViewRepositoryImpl struct{}

func NewViewRepository() ViewRepository {
	return &ViewRepositoryImpl{}
}

func (r *ViewRepositoryImpl) Upsert(db *gorm.DB, userID, influencerID string) error {
	view := models.UserInfluencerView{
		UserID:       userID,
		InfluencerID: influencerID,
		LastSeen:     time.Now(),
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "influencer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_seen", "updated_at"}),
	}).Create(&view).Error
}

func (r *ViewRepositoryImpl) ListByUser(db *gorm.DB, userID string, page, pageSize int) ([]models.UserInfluencerView, int64, error) {
	query := db.Model(&models.UserInfluencerView{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var views []models.UserInfluencerView
	err := query.
		Preload("Influencer").
		Preload("Influencer.Handles").
		Order("last_seen DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&views).Error
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}
