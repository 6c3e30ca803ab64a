package services

import (
	"testing"

	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"
	"trustfluence_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCreate_ReviewNotFound(t *testing.T) {
	svc := NewReportService(
		&mockReportRepo{},
		&mockReviewRepo{
			findByID: func(id string) (*models.Review, error) {
				return nil, repositories.ErrReviewNotFound
			},
		},
	)

	_, err := svc.Create(nil, "reporter-1", "missing", &dto.CreateReportRequest{
		Reasons: []string{"spam"},
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestReportCreate_Duplicate(t *testing.T) {
	svc := NewReportService(
		&mockReportRepo{
			create: func(r *models.ReviewReport) error { return repositories.ErrReportAlreadyExists },
		},
		&mockReviewRepo{
			findByID: func(id string) (*models.Review, error) { return &models.Review{}, nil },
		},
	)

	_, err := svc.Create(nil, "reporter-1", "rev-1", &dto.CreateReportRequest{
		Reasons: []string{"spam"},
	})

	assert.Equal(t, apperrors.ErrReportAlreadyExists, err)
}

func TestReportCreate_JoinsReasons(t *testing.T) {
	var created *models.ReviewReport
	svc := NewReportService(
		&mockReportRepo{
			create: func(r *models.ReviewReport) error { created = r; return nil },
		},
		&mockReviewRepo{
			findByID: func(id string) (*models.Review, error) { return &models.Review{}, nil },
		},
	)

	resp, err := svc.Create(nil, "reporter-1", "rev-1", &dto.CreateReportRequest{
		Reasons: []string{"spam", "inaccurate"},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "spam,inaccurate", created.Reasons)
	assert.Equal(t, models.ReportStatusOpen, created.Status)
	assert.Equal(t, []string{"spam", "inaccurate"}, resp.Reasons)
}

func TestReportUpdateStatus_StampsReviewer(t *testing.T) {
	stored := &models.ReviewReport{Status: models.ReportStatusOpen}
	var saved *models.ReviewReport

	svc := NewReportService(
		&mockReportRepo{
			findByID: func(id string) (*models.ReviewReport, error) { return stored, nil },
			update:   func(r *models.ReviewReport) error { saved = r; return nil },
		},
		&mockReviewRepo{},
	)

	resp, err := svc.UpdateStatus(nil, "rep-1", "admin-1", &dto.UpdateReportStatusRequest{
		Status: "investigating",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, models.ReportStatusInvestigating, saved.Status)
	require.NotNil(t, saved.ReviewedBy)
	assert.Equal(t, "admin-1", *saved.ReviewedBy)
	assert.NotNil(t, saved.ReviewedAt)
	assert.Equal(t, "investigating", resp.Status)
}

func TestReportUpdateStatus_ReopenClearsStamp(t *testing.T) {
	adminID := "admin-1"
	stored := &models.ReviewReport{
		Status:     models.ReportStatusClosed,
		ReviewedBy: &adminID,
	}
	var saved *models.ReviewReport

	svc := NewReportService(
		&mockReportRepo{
			findByID: func(id string) (*models.ReviewReport, error) { return stored, nil },
			update:   func(r *models.ReviewReport) error { saved = r; return nil },
		},
		&mockReviewRepo{},
	)

	// Переход без ограничений: closed -> open разрешен
	_, err := svc.UpdateStatus(nil, "rep-1", "admin-2", &dto.UpdateReportStatusRequest{
		Status: "open",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, models.ReportStatusOpen, saved.Status)
	assert.Nil(t, saved.ReviewedBy)
	assert.Nil(t, saved.ReviewedAt)
}

func TestReportList_PassesFilter(t *testing.T) {
	var gotFilter repositories.ReportFilter
	svc := NewReportService(
		&mockReportRepo{
			list: func(filter repositories.ReportFilter) ([]models.ReviewReport, int64, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		},
		&mockReviewRepo{},
	)

	_, err := svc.List(nil, &dto.ReportListQuery{Status: "investigating", ShowAll: true}, 2, 20)
	require.NoError(t, err)

	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, models.ReportStatusInvestigating, *gotFilter.Status)
	assert.True(t, gotFilter.ShowAll)
	assert.Equal(t, 2, gotFilter.Page)
	assert.Equal(t, 20, gotFilter.PageSize)
}
