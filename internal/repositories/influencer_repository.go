package repositories

import (
	"errors"
	"strings"

	"trustfluence_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInfluencerNotFound = errors.New("influencer not found")

// InfluencerSearchCriteria - фильтры каталога.
// MinRating сюда намеренно не входит: выборка страницы rating-agnostic,
// порог применяется сервисом после батч-подсчета рейтингов.
type InfluencerSearchCriteria struct {
	Search   string
	Niche    string
	Verified *bool
	Page     int
	PageSize int
}

type InfluencerRepository interface {
	Create(db *gorm.DB, influencer *models.Influencer) error
	Update(db *gorm.DB, influencer *models.Influencer) error
	FindByID(db *gorm.DB, id string) (*models.Influencer, error)
	FindByIDWithReviews(db *gorm.DB, id string) (*models.Influencer, error)
	Search(db *gorm.DB, criteria InfluencerSearchCriteria) ([]models.Influencer, int64, error)
	ReplaceHandles(db *gorm.DB, influencerID string, handles []models.InfluencerHandle) error
}

type InfluencerRepositoryImpl struct{}

func NewInfluencerRepository() InfluencerRepository {
	return &InfluencerRepositoryImpl{}
}

func (r *InfluencerRepositoryImpl) Create(db *gorm.DB, influencer *models.Influencer) error {
	return db.Create(influencer).Error
}

func (r *InfluencerRepositoryImpl) Update(db *gorm.DB, influencer *models.Influencer) error {
	return db.Save(influencer).Error
}

func (r *InfluencerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Influencer, error) {
	var influencer models.Influencer
	err := db.Preload("Handles").First(&influencer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}
	return &influencer, nil
}

func (r *InfluencerRepositoryImpl) FindByIDWithReviews(db *gorm.DB, id string) (*models.Influencer, error) {
	var influencer models.Influencer
	err := db.
		Preload("Handles").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Reviewer").
		First(&influencer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}
	return &influencer, nil
}

func (r *InfluencerRepositoryImpl) Search(db *gorm.DB, criteria InfluencerSearchCriteria) ([]models.Influencer, int64, error) {
	query := db.Model(&models.Influencer{})

	if criteria.Search != "" {
		pattern := "%" + strings.TrimSpace(criteria.Search) + "%"
		query = query.Where(
			"name ILIKE ? OR bio ILIKE ? OR niche ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if criteria.Niche != "" {
		query = query.Where("niche = ?", criteria.Niche)
	}
	if criteria.Verified != nil {
		query = query.Where("is_verified = ?", *criteria.Verified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var influencers []models.Influencer
	err := query.
		Preload("Handles").
		Order("name ASC").
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&influencers).Error
	if err != nil {
		return nil, 0, err
	}

	return influencers, total, nil
}

func (r *InfluencerRepositoryImpl) ReplaceHandles(db *gorm.DB, influencerID string, handles []models.InfluencerHandle) error {
	if err := db.Delete(&models.InfluencerHandle{}, "influencer_id = ?", influencerID).Error; err != nil {
		return err
	}
	if len(handles) == 0 {
		return nil
	}
	for i := range handles {
		handles[i].InfluencerID = influencerID
	}
	return db.Create(&handles).Error
}
