package services

import (
	"math"

	"trustfluence_backend/internal/logger"
	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"
	"trustfluence_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// searchPageSize - фиксированный размер страницы каталога
const searchPageSize = 12

type InfluencerService interface {
	// Create/Update - админский CRUD карточек
	Create(db *gorm.DB, req *dto.CreateInfluencerRequest) (*dto.InfluencerDetailResponse, error)
	Update(db *gorm.DB, influencerID string, req *dto.UpdateInfluencerRequest) (*dto.InfluencerDetailResponse, error)

	// GetDetail отдает карточку с агрегатами и, как побочный эффект,
	// фиксирует просмотр пользователем.
	GetDetail(db *gorm.DB, influencerID, viewerID string) (*dto.InfluencerDetailResponse, error)

	Search(db *gorm.DB, query *dto.InfluencerSearchQuery) (*dto.InfluencerSearchResponse, error)
	RecentlyViewed(db *gorm.DB, userID string, page, pageSize int) (*dto.RecentlyViewedResponse, error)
}

type influencerService struct {
	influencerRepo repositories.InfluencerRepository
	reviewRepo     repositories.ReviewRepository
	viewRepo       repositories.ViewRepository
}

func NewInfluencerService(
	influencerRepo repositories.InfluencerRepository,
	reviewRepo repositories.ReviewRepository,
	viewRepo repositories.ViewRepository,
) InfluencerService {
	return &influencerService{
		influencerRepo: influencerRepo,
		reviewRepo:     reviewRepo,
		viewRepo:       viewRepo,
	}
}

// ---------------- Admin CRUD ----------------

func (s *influencerService) Create(db *gorm.DB, req *dto.CreateInfluencerRequest) (*dto.InfluencerDetailResponse, error) {
	influencer := &models.Influencer{
		Name:            req.Name,
		Bio:             req.Bio,
		Niche:           req.Niche,
		IsVerified:      req.IsVerified,
		ProfileImageURL: req.ProfileImageURL,
		Handles:         handlesFromInput(req.Handles),
	}

	if err := s.influencerRepo.Create(db, influencer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildInfluencerDetail(influencer, nil, ""), nil
}

func (s *influencerService) Update(db *gorm.DB, influencerID string, req *dto.UpdateInfluencerRequest) (*dto.InfluencerDetailResponse, error) {
	influencer, err := s.influencerRepo.FindByID(db, influencerID)
	if err != nil {
		if err == repositories.ErrInfluencerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	influencer.Name = req.Name
	influencer.Bio = req.Bio
	influencer.Niche = req.Niche
	influencer.IsVerified = req.IsVerified
	influencer.ProfileImageURL = req.ProfileImageURL
	influencer.Handles = nil

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.influencerRepo.Update(tx, influencer); err != nil {
			return err
		}
		return s.influencerRepo.ReplaceHandles(tx, influencerID, handlesFromInput(req.Handles))
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.influencerRepo.FindByID(db, influencerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildInfluencerDetail(updated, nil, ""), nil
}

// ---------------- Directory ----------------

func (s *influencerService) GetDetail(db *gorm.DB, influencerID, viewerID string) (*dto.InfluencerDetailResponse, error) {
	influencer, err := s.influencerRepo.FindByIDWithReviews(db, influencerID)
	if err != nil {
		if err == repositories.ErrInfluencerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Просмотр фиксируем best-effort: сбой не ломает выдачу карточки
	if viewerID != "" {
		if err := s.viewRepo.Upsert(db, viewerID, influencerID); err != nil {
			logger.Error("failed to record influencer view",
				"user_id", viewerID, "influencer_id", influencerID, "error", err)
		}
	}

	return buildInfluencerDetail(influencer, influencer.Reviews, viewerID), nil
}

func (s *influencerService) Search(db *gorm.DB, query *dto.InfluencerSearchQuery) (*dto.InfluencerSearchResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	criteria := repositories.InfluencerSearchCriteria{
		Search:   query.Search,
		Niche:    query.Niche,
		Verified: query.Verified,
		Page:     page,
		PageSize: searchPageSize,
	}

	influencers, total, err := s.influencerRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(influencers))
	for i := range influencers {
		ids = append(ids, influencers[i].ID)
	}

	ratings, counts, err := s.ratingsByInfluencer(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]*dto.InfluencerSummary, 0, len(influencers))
	for i := range influencers {
		inf := &influencers[i]
		avg := ratings[inf.ID]

		// Порог рейтинга применяется после выборки страницы, поэтому
		// страница может оказаться короче и total остается от выборки.
		if query.MinRating > 0 && avg < query.MinRating {
			continue
		}

		summaries = append(summaries, buildInfluencerSummary(inf, avg, counts[inf.ID]))
	}

	return &dto.InfluencerSearchResponse{
		Influencers: summaries,
		Total:       total,
		Page:        page,
		PageSize:    searchPageSize,
	}, nil
}

func (s *influencerService) RecentlyViewed(db *gorm.DB, userID string, page, pageSize int) (*dto.RecentlyViewedResponse, error) {
	views, total, err := s.viewRepo.ListByUser(db, userID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(views))
	for i := range views {
		ids = append(ids, views[i].InfluencerID)
	}

	ratings, counts, err := s.ratingsByInfluencer(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.RecentlyViewedItem, 0, len(views))
	for i := range views {
		v := &views[i]
		items = append(items, &dto.RecentlyViewedItem{
			Influencer: buildInfluencerSummary(&v.Influencer, ratings[v.InfluencerID], counts[v.InfluencerID]),
			LastSeen:   v.LastSeen,
		})
	}

	return &dto.RecentlyViewedResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// ratingsByInfluencer считает средний overall и количество отзывов
// батчем по странице - одна выборка вместо запроса на карточку.
func (s *influencerService) ratingsByInfluencer(db *gorm.DB, influencerIDs []string) (map[string]float64, map[string]int64, error) {
	reviews, err := s.reviewRepo.FindByInfluencerIDs(db, influencerIDs)
	if err != nil {
		return nil, nil, err
	}

	sums := make(map[string]float64, len(influencerIDs))
	counts := make(map[string]int64, len(influencerIDs))
	for i := range reviews {
		sums[reviews[i].InfluencerID] += reviews[i].OverallRating
		counts[reviews[i].InfluencerID]++
	}

	avgs := make(map[string]float64, len(sums))
	for id, sum := range sums {
		avgs[id] = math.Round(sum/float64(counts[id])*10) / 10
	}

	return avgs, counts, nil
}

// ---------------- Builders ----------------

func handlesFromInput(inputs []dto.HandleInput) []models.InfluencerHandle {
	handles := make([]models.InfluencerHandle, 0, len(inputs))
	for _, h := range inputs {
		handles = append(handles, models.InfluencerHandle{
			Platform:      models.Platform(h.Platform),
			Username:      h.Username,
			ProfileURL:    h.ProfileURL,
			FollowerCount: h.FollowerCount,
		})
	}
	return handles
}

func buildHandleResponses(handles []models.InfluencerHandle) []dto.HandleResponse {
	responses := make([]dto.HandleResponse, 0, len(handles))
	for _, h := range handles {
		responses = append(responses, dto.HandleResponse{
			Platform:      string(h.Platform),
			Username:      h.Username,
			ProfileURL:    h.ProfileURL,
			FollowerCount: h.FollowerCount,
		})
	}
	return responses
}

func buildInfluencerSummary(inf *models.Influencer, avgRating float64, totalReviews int64) *dto.InfluencerSummary {
	return &dto.InfluencerSummary{
		ID:              inf.ID,
		Name:            inf.Name,
		Niche:           inf.Niche,
		IsVerified:      inf.IsVerified,
		ProfileImageURL: inf.ProfileImageURL,
		Handles:         buildHandleResponses(inf.Handles),
		AverageRating:   avgRating,
		TotalReviews:    totalReviews,
	}
}

func buildInfluencerDetail(inf *models.Influencer, reviews []models.Review, viewerID string) *dto.InfluencerDetailResponse {
	detail := &dto.InfluencerDetailResponse{
		ID:              inf.ID,
		Name:            inf.Name,
		Bio:             inf.Bio,
		Niche:           inf.Niche,
		IsVerified:      inf.IsVerified,
		ProfileImageURL: inf.ProfileImageURL,
		Handles:         buildHandleResponses(inf.Handles),
		Ratings:         categoryAverages(reviews),
		TotalReviews:    int64(len(reviews)),
		EngagementRate:  engagementRate(inf.Handles),
		Reviews:         make([]*dto.ReviewResponse, 0, len(reviews)),
		CreatedAt:       inf.CreatedAt,
	}

	for i := range reviews {
		r := &reviews[i]
		detail.Reviews = append(detail.Reviews, buildReviewResponse(r, &r.Reviewer, viewerID))
	}

	return detail
}

// categoryAverages - средние по пяти категориям и overall; нули без отзывов
func categoryAverages(reviews []models.Review) dto.CategoryRatings {
	if len(reviews) == 0 {
		return dto.CategoryRatings{}
	}

	var prof, comm, quality, roi, rel, overall float64
	for i := range reviews {
		r := &reviews[i]
		prof += float64(r.Professionalism)
		comm += float64(r.Communication)
		quality += float64(r.ContentQuality)
		roi += float64(r.ROI)
		rel += float64(r.Reliability)
		overall += r.OverallRating
	}

	n := float64(len(reviews))
	round1 := func(v float64) float64 { return math.Round(v/n*10) / 10 }

	return dto.CategoryRatings{
		Professionalism: round1(prof),
		Communication:   round1(comm),
		ContentQuality:  round1(quality),
		ROI:             round1(roi),
		Reliability:     round1(rel),
		Overall:         round1(overall),
	}
}

// engagementRate - эвристика по тиру среднего числа подписчиков.
// У крупных аккаунтов вовлеченность ниже, это известный паттерн индустрии.
func engagementRate(handles []models.InfluencerHandle) float64 {
	if len(handles) == 0 {
		return 0
	}

	var total int64
	for _, h := range handles {
		total += h.FollowerCount
	}
	avg := total / int64(len(handles))

	switch {
	case avg > 1_000_000:
		return 2.5
	case avg > 100_000:
		return 3.5
	default:
		return 4.5
	}
}
