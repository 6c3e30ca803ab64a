package repositories

import (
	"errors"

	"trustfluence_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this influencer")
)

type ReviewRepository interface {
	// Create проверяет уникальность пары (influencer, reviewer) перед insert.
	// Ограничение уровня приложения, не БД - как в исходной системе.
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByPair(db *gorm.DB, influencerID, reviewerID string) (*models.Review, error)
	Update(db *gorm.DB, review *models.Review) error
	FindByReviewer(db *gorm.DB, reviewerID string, page, pageSize int) ([]models.Review, int64, error)

	// FindByInfluencerIDs - батч-выборка отзывов для подсчета средних
	// рейтингов на странице каталога (группировка in-process).
	FindByInfluencerIDs(db *gorm.DB, influencerIDs []string) ([]models.Review, error)

	// CountPendingSentiment - для фонового воркера
	CountPendingSentiment(db *gorm.DB) (int64, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	var existing models.Review
	err := db.Where("influencer_id = ? AND reviewer_id = ?", review.InfluencerID, review.ReviewerID).
		First(&existing).Error
	if err == nil {
		return ErrReviewAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByPair(db *gorm.DB, influencerID, reviewerID string) (*models.Review, error) {
	var review models.Review
	err := db.Where("influencer_id = ? AND reviewer_id = ?", influencerID, reviewerID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Update(db *gorm.DB, review *models.Review) error {
	return db.Save(review).Error
}

func (r *ReviewRepositoryImpl) FindByReviewer(db *gorm.DB, reviewerID string, page, pageSize int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("reviewer_id = ?", reviewerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.
		Preload("Influencer").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewRepositoryImpl) FindByInfluencerIDs(db *gorm.DB, influencerIDs []string) ([]models.Review, error) {
	if len(influencerIDs) == 0 {
		return nil, nil
	}

	var reviews []models.Review
	err := db.Where("influencer_id IN ?", influencerIDs).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepositoryImpl) CountPendingSentiment(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("sentiment_score IS NULL").Count(&count).Error
	return count, err
}
