package workers

import (
	"context"
	"time"

	"trustfluence_backend/internal/logger"
	"trustfluence_backend/internal/repositories"

	"gorm.io/gorm"
)

// SentimentWorker - фоновый мониторинг очереди сантимент-анализа.
// Сам анализ внешним сервисом пока не подключен, воркер считает
// необработанные отзывы и чистит протухшие refresh-токены.
type SentimentWorker struct {
	db         *gorm.DB
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewSentimentWorker(db *gorm.DB, reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) *SentimentWorker {
	return &SentimentWorker{
		db:         db,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// Start запускает фоновые задачи
func (w *SentimentWorker) Start(ctx context.Context) {
	go w.reportPendingSentiment(ctx)
	go w.cleanExpiredTokens(ctx)
}

func (w *SentimentWorker) reportPendingSentiment(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("sentiment worker stopped")
			return
		case <-ticker.C:
			count, err := w.reviewRepo.CountPendingSentiment(w.db)
			if err != nil {
				logger.WorkerLog("sentiment", "count_pending", err)
				continue
			}
			if count > 0 {
				logger.Info("reviews awaiting sentiment analysis", "worker", "sentiment", "count", count)
			}
		}
	}
}

func (w *SentimentWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			if err := w.userRepo.CleanExpiredRefreshTokens(w.db); err != nil {
				logger.WorkerLog("token-cleanup", "clean_expired", err)
			}
		}
	}
}
