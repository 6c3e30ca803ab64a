package services

import (
	"sync"

	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/pkg/email"
	"trustfluence_backend/internal/repositories"

	"gorm.io/gorm"
)

// Ручные моки репозиториев: поле-функция на каждый используемый метод.
// Неожиданный вызов незаполненного метода роняет тест - это осознанно.

type mockUserRepo struct {
	findByID                func(id string) (*models.User, error)
	findByEmail             func(email string) (*models.User, error)
	create                  func(user *models.User) error
	updatePassword          func(userID, hash string, mustChange bool) error
	updatePublicProfile     func(userID string, public bool) error
	createRefreshToken      func(token *models.RefreshToken) error
	findRefreshToken        func(token string) (*models.RefreshToken, error)
	deleteRefreshToken      func(token string) error
	deleteUserRefreshTokens func(userID string) error
}

func (m *mockUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) { return m.findByID(id) }
func (m *mockUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	return m.findByEmail(email)
}
func (m *mockUserRepo) Create(_ *gorm.DB, user *models.User) error { return m.create(user) }
func (m *mockUserRepo) Update(_ *gorm.DB, user *models.User) error { panic("unexpected Update call") }
func (m *mockUserRepo) UpdatePassword(_ *gorm.DB, userID, hash string, mustChange bool) error {
	return m.updatePassword(userID, hash, mustChange)
}
func (m *mockUserRepo) UpdatePublicProfile(_ *gorm.DB, userID string, public bool) error {
	return m.updatePublicProfile(userID, public)
}
func (m *mockUserRepo) CreateRefreshToken(_ *gorm.DB, token *models.RefreshToken) error {
	return m.createRefreshToken(token)
}
func (m *mockUserRepo) FindRefreshToken(_ *gorm.DB, token string) (*models.RefreshToken, error) {
	return m.findRefreshToken(token)
}
func (m *mockUserRepo) DeleteRefreshToken(_ *gorm.DB, token string) error {
	return m.deleteRefreshToken(token)
}
func (m *mockUserRepo) DeleteUserRefreshTokens(_ *gorm.DB, userID string) error {
	return m.deleteUserRefreshTokens(userID)
}
func (m *mockUserRepo) CleanExpiredRefreshTokens(_ *gorm.DB) error {
	panic("unexpected CleanExpiredRefreshTokens call")
}

type mockProspectRepo struct {
	create       func(prospect *models.ProspectUser) error
	findByID     func(id string) (*models.ProspectUser, error)
	findByEmail  func(email string) (*models.ProspectUser, error)
	list         func(status *models.ProspectStatus, page, pageSize int) ([]models.ProspectUser, int64, error)
	markApproved func(id, approverID string) (int64, error)
	markRejected func(id, approverID string, reason *string) (int64, error)
}

func (m *mockProspectRepo) Create(_ *gorm.DB, p *models.ProspectUser) error { return m.create(p) }
func (m *mockProspectRepo) FindByID(_ *gorm.DB, id string) (*models.ProspectUser, error) {
	return m.findByID(id)
}
func (m *mockProspectRepo) FindByEmail(_ *gorm.DB, email string) (*models.ProspectUser, error) {
	return m.findByEmail(email)
}
func (m *mockProspectRepo) List(_ *gorm.DB, status *models.ProspectStatus, page, pageSize int) ([]models.ProspectUser, int64, error) {
	return m.list(status, page, pageSize)
}
func (m *mockProspectRepo) MarkApproved(_ *gorm.DB, id, approverID string) (int64, error) {
	return m.markApproved(id, approverID)
}
func (m *mockProspectRepo) MarkRejected(_ *gorm.DB, id, approverID string, reason *string) (int64, error) {
	return m.markRejected(id, approverID, reason)
}
func (m *mockProspectRepo) ResetToPending(_ *gorm.DB, id string) error {
	panic("unexpected ResetToPending call")
}

type mockInfluencerRepo struct {
	create              func(influencer *models.Influencer) error
	update              func(influencer *models.Influencer) error
	findByID            func(id string) (*models.Influencer, error)
	findByIDWithReviews func(id string) (*models.Influencer, error)
	search              func(criteria repositories.InfluencerSearchCriteria) ([]models.Influencer, int64, error)
	replaceHandles      func(influencerID string, handles []models.InfluencerHandle) error
}

func (m *mockInfluencerRepo) Create(_ *gorm.DB, i *models.Influencer) error { return m.create(i) }
func (m *mockInfluencerRepo) Update(_ *gorm.DB, i *models.Influencer) error { return m.update(i) }
func (m *mockInfluencerRepo) FindByID(_ *gorm.DB, id string) (*models.Influencer, error) {
	return m.findByID(id)
}
func (m *mockInfluencerRepo) FindByIDWithReviews(_ *gorm.DB, id string) (*models.Influencer, error) {
	return m.findByIDWithReviews(id)
}
func (m *mockInfluencerRepo) Search(_ *gorm.DB, criteria repositories.InfluencerSearchCriteria) ([]models.Influencer, int64, error) {
	return m.search(criteria)
}
func (m *mockInfluencerRepo) ReplaceHandles(_ *gorm.DB, influencerID string, handles []models.InfluencerHandle) error {
	return m.replaceHandles(influencerID, handles)
}

type mockReviewRepo struct {
	create              func(review *models.Review) error
	findByID            func(id string) (*models.Review, error)
	findByPair          func(influencerID, reviewerID string) (*models.Review, error)
	update              func(review *models.Review) error
	findByReviewer      func(reviewerID string, page, pageSize int) ([]models.Review, int64, error)
	findByInfluencerIDs func(influencerIDs []string) ([]models.Review, error)
}

func (m *mockReviewRepo) Create(_ *gorm.DB, r *models.Review) error { return m.create(r) }
func (m *mockReviewRepo) FindByID(_ *gorm.DB, id string) (*models.Review, error) {
	return m.findByID(id)
}
func (m *mockReviewRepo) FindByPair(_ *gorm.DB, influencerID, reviewerID string) (*models.Review, error) {
	return m.findByPair(influencerID, reviewerID)
}
func (m *mockReviewRepo) Update(_ *gorm.DB, r *models.Review) error { return m.update(r) }
func (m *mockReviewRepo) FindByReviewer(_ *gorm.DB, reviewerID string, page, pageSize int) ([]models.Review, int64, error) {
	return m.findByReviewer(reviewerID, page, pageSize)
}
func (m *mockReviewRepo) FindByInfluencerIDs(_ *gorm.DB, influencerIDs []string) ([]models.Review, error) {
	return m.findByInfluencerIDs(influencerIDs)
}
func (m *mockReviewRepo) CountPendingSentiment(_ *gorm.DB) (int64, error) {
	panic("unexpected CountPendingSentiment call")
}

type mockReportRepo struct {
	create     func(report *models.ReviewReport) error
	findByID   func(id string) (*models.ReviewReport, error)
	findByPair func(reviewID, reporterID string) (*models.ReviewReport, error)
	list       func(filter repositories.ReportFilter) ([]models.ReviewReport, int64, error)
	update     func(report *models.ReviewReport) error
}

func (m *mockReportRepo) Create(_ *gorm.DB, r *models.ReviewReport) error { return m.create(r) }
func (m *mockReportRepo) FindByID(_ *gorm.DB, id string) (*models.ReviewReport, error) {
	return m.findByID(id)
}
func (m *mockReportRepo) FindByPair(_ *gorm.DB, reviewID, reporterID string) (*models.ReviewReport, error) {
	return m.findByPair(reviewID, reporterID)
}
func (m *mockReportRepo) List(_ *gorm.DB, filter repositories.ReportFilter) ([]models.ReviewReport, int64, error) {
	return m.list(filter)
}
func (m *mockReportRepo) Update(_ *gorm.DB, r *models.ReviewReport) error { return m.update(r) }

type mockViewRepo struct {
	upsert     func(userID, influencerID string) error
	listByUser func(userID string, page, pageSize int) ([]models.UserInfluencerView, int64, error)
}

func (m *mockViewRepo) Upsert(_ *gorm.DB, userID, influencerID string) error {
	return m.upsert(userID, influencerID)
}
func (m *mockViewRepo) ListByUser(_ *gorm.DB, userID string, page, pageSize int) ([]models.UserInfluencerView, int64, error) {
	return m.listByUser(userID, page, pageSize)
}

// mockEmailSender записывает отправленные письма.
// Мьютекс нужен: отправка в сервисах fire-and-forget из горутин.
type mockEmailSender struct {
	mu       sync.Mutex
	approved []string
	rejected []string
}

func (m *mockEmailSender) Send(e *email.Email) error { return nil }
func (m *mockEmailSender) SendAccountApproved(to, name, loginEmail, tempPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approved = append(m.approved, to)
	return nil
}
func (m *mockEmailSender) SendApplicationRejected(to, name, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected = append(m.rejected, to)
	return nil
}

func (m *mockEmailSender) rejectedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rejected)
}

func (m *mockEmailSender) lastRejected() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rejected) == 0 {
		return ""
	}
	return m.rejected[len(m.rejected)-1]
}
