package dto

import "time"

// CreateReportRequest - жалоба на отзыв
type CreateReportRequest struct {
	Reasons        []string `json:"reasons" validate:"required,min=1,is-report-reason"`
	AdditionalInfo *string  `json:"additional_info,omitempty" validate:"omitempty,max=2000"`
}

// UpdateReportStatusRequest - смена статуса жалобы администратором
type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required,is-report-status"`
}

// ReportListQuery - фильтры списка жалоб (query params)
type ReportListQuery struct {
	Status  string `form:"status" validate:"omitempty,is-report-status"`
	ShowAll bool   `form:"show_all"`
}

type ReportResponse struct {
	ID             string     `json:"id"`
	ReviewID       string     `json:"review_id"`
	ReporterID     string     `json:"reporter_id"`
	ReporterName   string     `json:"reporter_name,omitempty"`
	Reasons        []string   `json:"reasons"`
	AdditionalInfo *string    `json:"additional_info,omitempty"`
	Status         string     `json:"status"`
	ReviewedBy     *string    `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ReportListResponse struct {
	Reports    []*ReportResponse `json:"reports"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
