package services

import (
	"math"

	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"
	"trustfluence_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// Create - один отзыв на пару (influencer, reviewer)
	Create(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)

	// Update доступен только автору отзыва
	Update(db *gorm.DB, reviewID, viewerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)

	// Check отвечает, оставлял ли пользователь отзыв на инфлюенсера
	Check(db *gorm.DB, influencerID, reviewerID string) (*dto.CheckReviewResponse, error)

	GetMyReviews(db *gorm.DB, reviewerID string, page, pageSize int) (*dto.ReviewListResponse, error)
}

type reviewService struct {
	reviewRepo     repositories.ReviewRepository
	influencerRepo repositories.InfluencerRepository
	userRepo       repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	influencerRepo repositories.InfluencerRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		influencerRepo: influencerRepo,
		userRepo:       userRepo,
	}
}

func (s *reviewService) Create(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.influencerRepo.FindByID(db, req.InfluencerID); err != nil {
		if err == repositories.ErrInfluencerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		InfluencerID:    req.InfluencerID,
		ReviewerID:      reviewerID,
		Professionalism: req.Professionalism,
		Communication:   req.Communication,
		ContentQuality:  req.ContentQuality,
		ROI:             req.ROI,
		Reliability:     req.Reliability,
		OverallRating:   overallRating(req.Professionalism, req.Communication, req.ContentQuality, req.ROI, req.Reliability),
		Pros:            req.Pros,
		Cons:            req.Cons,
		Advice:          req.Advice,
		WouldWorkAgain:  req.WouldWorkAgain != nil && *req.WouldWorkAgain,
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		if err == repositories.ErrReviewAlreadyExists {
			return nil, apperrors.ErrReviewAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	author, err := s.userRepo.FindByID(db, reviewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildReviewResponse(review, author, reviewerID), nil
}

func (s *reviewService) Update(db *gorm.DB, reviewID, viewerID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if err == repositories.ErrReviewNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if review.ReviewerID != viewerID {
		return nil, apperrors.ErrNotReviewAuthor
	}

	review.Professionalism = req.Professionalism
	review.Communication = req.Communication
	review.ContentQuality = req.ContentQuality
	review.ROI = req.ROI
	review.Reliability = req.Reliability
	review.OverallRating = overallRating(req.Professionalism, req.Communication, req.ContentQuality, req.ROI, req.Reliability)
	review.Pros = req.Pros
	review.Cons = req.Cons
	review.Advice = req.Advice
	review.WouldWorkAgain = req.WouldWorkAgain != nil && *req.WouldWorkAgain

	// Правка текста сбрасывает рассчитанный сантимент
	review.SentimentScore = nil

	if err := s.reviewRepo.Update(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	author, err := s.userRepo.FindByID(db, viewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildReviewResponse(review, author, viewerID), nil
}

func (s *reviewService) Check(db *gorm.DB, influencerID, reviewerID string) (*dto.CheckReviewResponse, error) {
	review, err := s.reviewRepo.FindByPair(db, influencerID, reviewerID)
	if err != nil {
		if err == repositories.ErrReviewNotFound {
			return &dto.CheckReviewResponse{HasReview: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CheckReviewResponse{
		HasReview: true,
		ReviewID:  &review.ID,
	}, nil
}

func (s *reviewService) GetMyReviews(db *gorm.DB, reviewerID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	reviews, total, err := s.reviewRepo.FindByReviewer(db, reviewerID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	author, err := s.userRepo.FindByID(db, reviewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i], author, reviewerID))
	}

	return &dto.ReviewListResponse{
		Reviews:    responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// overallRating - среднее пяти оценок, округленное до одного знака
func overallRating(professionalism, communication, contentQuality, roi, reliability int) float64 {
	sum := professionalism + communication + contentQuality + roi + reliability
	return math.Round(float64(sum)/5*10) / 10
}

// buildReviewResponse собирает ответ с учетом анонимности автора:
// имя отдается только при публичном профиле или самому автору.
func buildReviewResponse(review *models.Review, author *models.User, viewerID string) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:              review.ID,
		InfluencerID:    review.InfluencerID,
		Professionalism: review.Professionalism,
		Communication:   review.Communication,
		ContentQuality:  review.ContentQuality,
		ROI:             review.ROI,
		Reliability:     review.Reliability,
		OverallRating:   review.OverallRating,
		Pros:            review.Pros,
		Cons:            review.Cons,
		Advice:          review.Advice,
		WouldWorkAgain:  review.WouldWorkAgain,
		IsOwn:           review.ReviewerID == viewerID,
		CreatedAt:       review.CreatedAt,
		UpdatedAt:       review.UpdatedAt,
	}

	if author != nil && (author.PublicProfile || resp.IsOwn) {
		resp.Reviewer = &dto.ReviewerInfo{
			ID:       author.ID,
			FullName: author.FullName,
			Company:  author.Company,
			Title:    author.Title,
		}
	}

	return resp
}
