package services

import (
	"trustfluence_backend/internal/pkg/email"
	"trustfluence_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения в одном месте
type ServiceContainer struct {
	Auth       AuthService
	User       UserService
	Prospect   ProspectService
	Influencer InfluencerService
	Review     ReviewService
	Report     ReportService
}

func NewServiceContainer(emailSender email.Sender) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	prospectRepo := repositories.NewProspectRepository()
	influencerRepo := repositories.NewInfluencerRepository()
	reviewRepo := repositories.NewReviewRepository()
	reportRepo := repositories.NewReportRepository()
	viewRepo := repositories.NewViewRepository()

	return &ServiceContainer{
		Auth:       NewAuthService(userRepo),
		User:       NewUserService(userRepo),
		Prospect:   NewProspectService(prospectRepo, userRepo, emailSender),
		Influencer: NewInfluencerService(influencerRepo, reviewRepo, viewRepo),
		Review:     NewReviewService(reviewRepo, influencerRepo, userRepo),
		Report:     NewReportService(reportRepo, reviewRepo),
	}
}
