package handlers

import (
	"trustfluence_backend/internal/services"
	"trustfluence_backend/internal/validator"
)

// AppHandlers собирает все HTTP-хендлеры приложения
type AppHandlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Prospect   *ProspectHandler
	Influencer *InfluencerHandler
	Review     *ReviewHandler
	Report     *ReportHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:       NewAuthHandler(base, sc.Auth),
		User:       NewUserHandler(base, sc.User),
		Prospect:   NewProspectHandler(base, sc.Prospect),
		Influencer: NewInfluencerHandler(base, sc.Influencer),
		Review:     NewReviewHandler(base, sc.Review, sc.Report),
		Report:     NewReportHandler(base, sc.Report),
	}
}
