package services

import (
	"time"

	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"
	"trustfluence_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReportService interface {
	// Create - одна жалоба на пару (review, reporter)
	Create(db *gorm.DB, reporterID, reviewID string, req *dto.CreateReportRequest) (*dto.ReportResponse, error)

	// GetForReview отвечает, жаловался ли пользователь на этот отзыв
	GetForReview(db *gorm.DB, reviewID, reporterID string) (*dto.ReportResponse, error)

	// List - админская лента триажа
	List(db *gorm.DB, query *dto.ReportListQuery, page, pageSize int) (*dto.ReportListResponse, error)

	// UpdateStatus - переходы без ограничений по текущему статусу:
	// админ может и закрыть, и вернуть жалобу в open.
	UpdateStatus(db *gorm.DB, reportID, adminID string, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	reportRepo repositories.ReportRepository
	reviewRepo repositories.ReviewRepository
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	reviewRepo repositories.ReviewRepository,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *reportService) Create(db *gorm.DB, reporterID, reviewID string, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if _, err := s.reviewRepo.FindByID(db, reviewID); err != nil {
		if err == repositories.ErrReviewNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	report := &models.ReviewReport{
		ReviewID:       reviewID,
		ReporterID:     reporterID,
		AdditionalInfo: req.AdditionalInfo,
		Status:         models.ReportStatusOpen,
	}
	report.SetReasons(req.Reasons)

	if err := s.reportRepo.Create(db, report); err != nil {
		if err == repositories.ErrReportAlreadyExists {
			return nil, apperrors.ErrReportAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return buildReportResponse(report), nil
}

func (s *reportService) GetForReview(db *gorm.DB, reviewID, reporterID string) (*dto.ReportResponse, error) {
	report, err := s.reportRepo.FindByPair(db, reviewID, reporterID)
	if err != nil {
		if err == repositories.ErrReportNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildReportResponse(report), nil
}

func (s *reportService) List(db *gorm.DB, query *dto.ReportListQuery, page, pageSize int) (*dto.ReportListResponse, error) {
	filter := repositories.ReportFilter{
		ShowAll:  query.ShowAll,
		Page:     page,
		PageSize: pageSize,
	}
	if query.Status != "" {
		st := models.ReportStatus(query.Status)
		filter.Status = &st
	}

	reports, total, err := s.reportRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, buildReportResponse(&reports[i]))
	}

	return &dto.ReportListResponse{
		Reports:    responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

func (s *reportService) UpdateStatus(db *gorm.DB, reportID, adminID string, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	report, err := s.reportRepo.FindByID(db, reportID)
	if err != nil {
		if err == repositories.ErrReportNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	newStatus := models.ReportStatus(req.Status)
	report.Status = newStatus

	if newStatus == models.ReportStatusOpen {
		// Возврат в open снимает отметку рассмотрения
		report.ReviewedBy = nil
		report.ReviewedAt = nil
	} else {
		now := time.Now()
		report.ReviewedBy = &adminID
		report.ReviewedAt = &now
	}

	if err := s.reportRepo.Update(db, report); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildReportResponse(report), nil
}

func buildReportResponse(r *models.ReviewReport) *dto.ReportResponse {
	resp := &dto.ReportResponse{
		ID:             r.ID,
		ReviewID:       r.ReviewID,
		ReporterID:     r.ReporterID,
		Reasons:        r.ReasonList(),
		AdditionalInfo: r.AdditionalInfo,
		Status:         string(r.Status),
		ReviewedBy:     r.ReviewedBy,
		ReviewedAt:     r.ReviewedAt,
		CreatedAt:      r.CreatedAt,
	}
	if r.Reporter.ID != "" {
		resp.ReporterName = r.Reporter.FullName
	}
	return resp
}
