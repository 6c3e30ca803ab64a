package repositories

import (
	"errors"
	"time"

	"trustfluence_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProspectNotFound      = errors.New("prospect not found")
	ErrProspectAlreadyExists = errors.New("prospect already exists for this email")
)

type ProspectRepository interface {
	Create(db *gorm.DB, prospect *models.ProspectUser) error
	FindByID(db *gorm.DB, id string) (*models.ProspectUser, error)
	FindByEmail(db *gorm.DB, email string) (*models.ProspectUser, error)
	List(db *gorm.DB, status *models.ProspectStatus, page, pageSize int) ([]models.ProspectUser, int64, error)

	// MarkApproved переводит pending-заявку в approved.
	// Возвращает число затронутых строк: 0 означает, что заявка уже рассмотрена.
	MarkApproved(db *gorm.DB, id, approverID string) (int64, error)

	// MarkRejected - предикатный update: WHERE status = 'pending'.
	// Повторный/устаревший запрос молча не затрагивает строк.
	MarkRejected(db *gorm.DB, id, approverID string, reason *string) (int64, error)

	// ResetToPending - внеплановый административный сброс (скрипт), не переход workflow
	ResetToPending(db *gorm.DB, id string) error
}

type ProspectRepositoryImpl struct{}

func NewProspectRepository() ProspectRepository {
	return &ProspectRepositoryImpl{}
}

func (r *ProspectRepositoryImpl) Create(db *gorm.DB, prospect *models.ProspectUser) error {
	var existing models.ProspectUser
	if err := db.Where("email = ?", prospect.Email).First(&existing).Error; err == nil {
		return ErrProspectAlreadyExists
	}
	return db.Create(prospect).Error
}

func (r *ProspectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ProspectUser, error) {
	var prospect models.ProspectUser
	err := db.First(&prospect, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProspectNotFound
		}
		return nil, err
	}
	return &prospect, nil
}

func (r *ProspectRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.ProspectUser, error) {
	var prospect models.ProspectUser
	err := db.First(&prospect, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProspectNotFound
		}
		return nil, err
	}
	return &prospect, nil
}

func (r *ProspectRepositoryImpl) List(db *gorm.DB, status *models.ProspectStatus, page, pageSize int) ([]models.ProspectUser, int64, error) {
	query := db.Model(&models.ProspectUser{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var prospects []models.ProspectUser
	err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&prospects).Error
	if err != nil {
		return nil, 0, err
	}

	return prospects, total, nil
}

func (r *ProspectRepositoryImpl) MarkApproved(db *gorm.DB, id, approverID string) (int64, error) {
	now := time.Now()
	result := db.Model(&models.ProspectUser{}).
		Where("id = ? AND status = ?", id, models.ProspectStatusPending).
		Updates(map[string]interface{}{
			"status":      models.ProspectStatusApproved,
			"reviewed_at": now,
			"reviewed_by": approverID,
		})
	return result.RowsAffected, result.Error
}

func (r *ProspectRepositoryImpl) MarkRejected(db *gorm.DB, id, approverID string, reason *string) (int64, error) {
	now := time.Now()
	result := db.Model(&models.ProspectUser{}).
		Where("id = ? AND status = ?", id, models.ProspectStatusPending).
		Updates(map[string]interface{}{
			"status":           models.ProspectStatusRejected,
			"rejection_reason": reason,
			"reviewed_at":      now,
			"reviewed_by":      approverID,
		})
	return result.RowsAffected, result.Error
}

func (r *ProspectRepositoryImpl) ResetToPending(db *gorm.DB, id string) error {
	result := db.Model(&models.ProspectUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           models.ProspectStatusPending,
			"rejection_reason": nil,
			"reviewed_at":      nil,
			"reviewed_by":      nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProspectNotFound
	}
	return nil
}
