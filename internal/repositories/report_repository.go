package repositories

import (
	"errors"

	"trustfluence_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyExists = errors.New("report already exists for this review")
)

// ReportFilter - фильтр списка жалоб для админ-панели.
// Если Status задан - точное совпадение; иначе при ShowAll=false
// закрытые жалобы исключаются.
type ReportFilter struct {
	Status   *models.ReportStatus
	ShowAll  bool
	Page     int
	PageSize int
}

type ReportRepository interface {
	Create(db *gorm.DB, report *models.ReviewReport) error
	FindByID(db *gorm.DB, id string) (*models.ReviewReport, error)
	FindByPair(db *gorm.DB, reviewID, reporterID string) (*models.ReviewReport, error)
	List(db *gorm.DB, filter ReportFilter) ([]models.ReviewReport, int64, error)
	Update(db *gorm.DB, report *models.ReviewReport) error
}

type ReportRepositoryImpl struct{}

func NewReportRepository() ReportRepository {
	return &ReportRepositoryImpl{}
}

func (r *ReportRepositoryImpl) Create(db *gorm.DB, report *models.ReviewReport) error {
	var existing models.ReviewReport
	err := db.Where("review_id = ? AND reporter_id = ?", report.ReviewID, report.ReporterID).
		First(&existing).Error
	if err == nil {
		return ErrReportAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(report).Error
}

func (r *ReportRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ReviewReport, error) {
	var report models.ReviewReport
	err := db.First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) FindByPair(db *gorm.DB, reviewID, reporterID string) (*models.ReviewReport, error) {
	var report models.ReviewReport
	err := db.Where("review_id = ? AND reporter_id = ?", reviewID, reporterID).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) List(db *gorm.DB, filter ReportFilter) ([]models.ReviewReport, int64, error) {
	query := db.Model(&models.ReviewReport{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	} else if !filter.ShowAll {
		query = query.Where("status <> ?", models.ReportStatusClosed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.ReviewReport
	err := query.
		Preload("Review").
		Preload("Reporter").
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *ReportRepositoryImpl) Update(db *gorm.DB, report *models.ReviewReport) error {
	return db.Save(report).Error
}
