package dto

import "time"

// ======================
// Request DTOs
// ======================

type HandleInput struct {
	Platform      string `json:"platform" validate:"required,is-platform"`
	Username      string `json:"username" validate:"required,max=100"`
	ProfileURL    string `json:"profile_url" validate:"omitempty,url"`
	FollowerCount int64  `json:"follower_count" validate:"min=0"`
}

type CreateInfluencerRequest struct {
	Name            string        `json:"name" validate:"required,max=200"`
	Bio             string        `json:"bio" validate:"omitempty,max=4000"`
	Niche           string        `json:"niche" validate:"required,max=100"`
	IsVerified      bool          `json:"is_verified"`
	ProfileImageURL string        `json:"profile_image_url" validate:"omitempty,url"`
	Handles         []HandleInput `json:"handles" validate:"omitempty,dive"`
}

type UpdateInfluencerRequest struct {
	Name            string        `json:"name" validate:"required,max=200"`
	Bio             string        `json:"bio" validate:"omitempty,max=4000"`
	Niche           string        `json:"niche" validate:"required,max=100"`
	IsVerified      bool          `json:"is_verified"`
	ProfileImageURL string        `json:"profile_image_url" validate:"omitempty,url"`
	Handles         []HandleInput `json:"handles" validate:"omitempty,dive"`
}

// InfluencerSearchQuery - параметры поиска каталога (query params)
type InfluencerSearchQuery struct {
	Page      int     `form:"page" validate:"omitempty,min=1"`
	Search    string  `form:"search" validate:"omitempty,max=200"`
	Niche     string  `form:"niche" validate:"omitempty,max=100"`
	MinRating float64 `form:"min_rating" validate:"omitempty,min=0,max=5"`
	Verified  *bool   `form:"verified"`
}

// ======================
// Response DTOs
// ======================

type HandleResponse struct {
	Platform      string `json:"platform"`
	Username      string `json:"username"`
	ProfileURL    string `json:"profile_url,omitempty"`
	FollowerCount int64  `json:"follower_count"`
}

// InfluencerSummary - элемент каталога
type InfluencerSummary struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Niche           string           `json:"niche"`
	IsVerified      bool             `json:"is_verified"`
	ProfileImageURL string           `json:"profile_image_url,omitempty"`
	Handles         []HandleResponse `json:"handles"`
	AverageRating   float64          `json:"average_rating"`
	TotalReviews    int64            `json:"total_reviews"`
}

type InfluencerSearchResponse struct {
	Influencers []*InfluencerSummary `json:"influencers"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CategoryRatings - средние по категориям среди всех отзывов (0 если отзывов нет)
type CategoryRatings struct {
	Professionalism float64 `json:"professionalism"`
	Communication   float64 `json:"communication"`
	ContentQuality  float64 `json:"content_quality"`
	ROI             float64 `json:"roi"`
	Reliability     float64 `json:"reliability"`
	Overall         float64 `json:"overall"`
}

type InfluencerDetailResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Bio             string           `json:"bio,omitempty"`
	Niche           string           `json:"niche"`
	IsVerified      bool             `json:"is_verified"`
	ProfileImageURL string           `json:"profile_image_url,omitempty"`
	Handles         []HandleResponse `json:"handles"`

	Ratings      CategoryRatings `json:"ratings"`
	TotalReviews int64           `json:"total_reviews"`

	// Эвристика по тиру среднего числа подписчиков, не измеренные данные
	EngagementRate float64 `json:"engagement_rate"`

	Reviews []*ReviewResponse `json:"reviews"`

	CreatedAt time.Time `json:"created_at"`
}

// RecentlyViewedItem - элемент ленты "недавно просмотренные"
type RecentlyViewedItem struct {
	Influencer *InfluencerSummary `json:"influencer"`
	LastSeen   time.Time          `json:"last_seen"`
}

type RecentlyViewedResponse struct {
	Items      []*RecentlyViewedItem `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}
