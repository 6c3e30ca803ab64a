package dto

import "time"

// SubmitProspectRequest - публичная заявка на доступ
type SubmitProspectRequest struct {
	FullName        string `json:"full_name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Company         string `json:"company" validate:"required,max=200"`
	Title           string `json:"title" validate:"required,max=200"`
	YearsExperience int    `json:"years_experience" validate:"required,min=0,max=60"`
	LinkedInURL     string `json:"linkedin_url" validate:"omitempty,url"`
}

// RejectProspectRequest - отклонение заявки администратором
type RejectProspectRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

// ProspectResponse - заявка в админ-списке
type ProspectResponse struct {
	ID              string     `json:"id"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	Company         string     `json:"company"`
	Title           string     `json:"title"`
	YearsExperience int        `json:"years_experience"`
	LinkedInURL     string     `json:"linkedin_url,omitempty"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ProspectListResponse - страница заявок
type ProspectListResponse struct {
	Prospects  []*ProspectResponse `json:"prospects"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// ApproveProspectResponse - результат одобрения.
// Временный пароль возвращается вызывающему администратору и уходит письмом.
type ApproveProspectResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
}
