package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateReviewRequest struct {
	InfluencerID string `json:"influencer_id" validate:"required,uuid"`

	Professionalism int `json:"professionalism" validate:"required,min=1,max=5"`
	Communication   int `json:"communication" validate:"required,min=1,max=5"`
	ContentQuality  int `json:"content_quality" validate:"required,min=1,max=5"`
	ROI             int `json:"roi" validate:"required,min=1,max=5"`
	Reliability     int `json:"reliability" validate:"required,min=1,max=5"`

	Pros   string `json:"pros" validate:"required,max=4000"`
	Cons   string `json:"cons" validate:"required,max=4000"`
	Advice string `json:"advice" validate:"required,max=4000"`

	// Указатель, чтобы отличить пропущенное поле от false
	WouldWorkAgain *bool `json:"would_work_again" validate:"required"`
}

// UpdateReviewRequest - редактирование отзыва автором.
// InfluencerID и ReviewerID неизменяемы, поэтому их здесь нет.
type UpdateReviewRequest struct {
	Professionalism int `json:"professionalism" validate:"required,min=1,max=5"`
	Communication   int `json:"communication" validate:"required,min=1,max=5"`
	ContentQuality  int `json:"content_quality" validate:"required,min=1,max=5"`
	ROI             int `json:"roi" validate:"required,min=1,max=5"`
	Reliability     int `json:"reliability" validate:"required,min=1,max=5"`

	Pros   string `json:"pros" validate:"required,max=4000"`
	Cons   string `json:"cons" validate:"required,max=4000"`
	Advice string `json:"advice" validate:"required,max=4000"`

	WouldWorkAgain *bool `json:"would_work_again" validate:"required"`
}

// ======================
// Response DTOs
// ======================

// ReviewerInfo - автор отзыва; отдается только если профиль публичный
// или отзыв смотрит сам автор.
type ReviewerInfo struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Company  string `json:"company,omitempty"`
	Title    string `json:"title,omitempty"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	InfluencerID string `json:"influencer_id"`

	Professionalism int `json:"professionalism"`
	Communication   int `json:"communication"`
	ContentQuality  int `json:"content_quality"`
	ROI             int `json:"roi"`
	Reliability     int `json:"reliability"`

	OverallRating float64 `json:"overall_rating"`

	Pros           string `json:"pros"`
	Cons           string `json:"cons"`
	Advice         string `json:"advice"`
	WouldWorkAgain bool   `json:"would_work_again"`

	Reviewer *ReviewerInfo `json:"reviewer,omitempty"`
	IsOwn    bool          `json:"is_own"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// CheckReviewResponse - есть ли у пользователя отзыв на инфлюенсера
type CheckReviewResponse struct {
	HasReview bool    `json:"has_review"`
	ReviewID  *string `json:"review_id,omitempty"`
}
