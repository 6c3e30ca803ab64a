package services

import (
	"trustfluence_backend/internal/auth"
	"trustfluence_backend/internal/logger"
	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/pkg/email"
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"
	"trustfluence_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProspectService interface {
	Submit(db *gorm.DB, req *dto.SubmitProspectRequest) (*dto.ProspectResponse, error)
	List(db *gorm.DB, status string, page, pageSize int) (*dto.ProspectListResponse, error)

	// Approve: pending -> approved. Создает аккаунт с временным паролем
	// и (fire-and-forget) отправляет его письмом.
	Approve(db *gorm.DB, prospectID, approverID string) (*dto.ApproveProspectResponse, error)

	// Reject: pending -> rejected. Предикатный update, повторный запрос - тихий no-op.
	Reject(db *gorm.DB, prospectID, approverID string, reason *string) error
}

type prospectService struct {
	prospectRepo repositories.ProspectRepository
	userRepo     repositories.UserRepository
	emailSender  email.Sender
}

func NewProspectService(
	prospectRepo repositories.ProspectRepository,
	userRepo repositories.UserRepository,
	emailSender email.Sender,
) ProspectService {
	return &prospectService{
		prospectRepo: prospectRepo,
		userRepo:     userRepo,
		emailSender:  emailSender,
	}
}

// ---------------- Public intake ----------------

func (s *prospectService) Submit(db *gorm.DB, req *dto.SubmitProspectRequest) (*dto.ProspectResponse, error) {
	// Email не должен быть занят ни заявкой, ни живым аккаунтом
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrProspectEmailTaken
	}

	prospect := &models.ProspectUser{
		FullName:        req.FullName,
		Email:           req.Email,
		Company:         req.Company,
		Title:           req.Title,
		YearsExperience: req.YearsExperience,
		LinkedInURL:     req.LinkedInURL,
		Status:          models.ProspectStatusPending,
	}

	if err := s.prospectRepo.Create(db, prospect); err != nil {
		if err == repositories.ErrProspectAlreadyExists {
			return nil, apperrors.ErrProspectEmailTaken
		}
		return nil, apperrors.InternalError(err)
	}

	return buildProspectResponse(prospect), nil
}

func (s *prospectService) List(db *gorm.DB, status string, page, pageSize int) (*dto.ProspectListResponse, error) {
	var statusFilter *models.ProspectStatus
	if status != "" {
		st := models.ProspectStatus(status)
		statusFilter = &st
	}

	prospects, total, err := s.prospectRepo.List(db, statusFilter, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ProspectResponse, 0, len(prospects))
	for i := range prospects {
		responses = append(responses, buildProspectResponse(&prospects[i]))
	}

	return &dto.ProspectListResponse{
		Prospects:  responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}, nil
}

// ---------------- Approval workflow ----------------

func (s *prospectService) Approve(db *gorm.DB, prospectID, approverID string) (*dto.ApproveProspectResponse, error) {
	prospect, err := s.prospectRepo.FindByID(db, prospectID)
	if err != nil {
		if err == repositories.ErrProspectNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if prospect.Status != models.ProspectStatusPending {
		return nil, apperrors.ErrProspectNotPending
	}

	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:              prospect.Email,
		PasswordHash:       passwordHash,
		Role:               models.UserRoleUser,
		IsActive:           true,
		IsVerified:         true,
		MustChangePassword: true,
		FullName:           prospect.FullName,
		Company:            prospect.Company,
		Title:              prospect.Title,
		YearsExperience:    prospect.YearsExperience,
		LinkedInURL:        prospect.LinkedInURL,
		ProspectUserID:     &prospect.ID,
	}

	// Создание аккаунта и перевод заявки - одна транзакция: либо оба
	// изменения видны, либо ни одного. Компенсирующее удаление аккаунта
	// из исходной системы здесь не нужно.
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		rows, err := s.prospectRepo.MarkApproved(tx, prospectID, approverID)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Конкурентное одобрение успело раньше
			return apperrors.ErrProspectNotPending
		}

		return nil
	})
	if txErr != nil {
		if txErr == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrConflict(txErr, "prospect", "Account with this email already exists")
		}
		if appErr, ok := apperrors.AsAppError(txErr); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(txErr)
	}

	// Fire-and-forget: письмо не откатывает одобрение
	if s.emailSender != nil {
		go func(to, name, tempPassword string) {
			if err := s.emailSender.SendAccountApproved(to, name, to, tempPassword); err != nil {
				logger.Error("failed to send approval email", "email", to, "error", err)
			}
		}(prospect.Email, prospect.FullName, tempPassword)
	}

	return &dto.ApproveProspectResponse{
		UserID:       user.ID,
		Email:        user.Email,
		TempPassword: tempPassword,
	}, nil
}

func (s *prospectService) Reject(db *gorm.DB, prospectID, approverID string, reason *string) error {
	prospect, err := s.prospectRepo.FindByID(db, prospectID)
	if err != nil {
		if err == repositories.ErrProspectNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	rows, err := s.prospectRepo.MarkRejected(db, prospectID, approverID, reason)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		// Заявка уже рассмотрена: устаревший/повторный запрос игнорируем молча
		logger.Warn("reject skipped: prospect is not pending", "prospect_id", prospectID)
		return nil
	}

	if s.emailSender != nil {
		rejectionReason := ""
		if reason != nil {
			rejectionReason = *reason
		}
		go func(to, name, reason string) {
			if err := s.emailSender.SendApplicationRejected(to, name, reason); err != nil {
				logger.Error("failed to send rejection email", "email", to, "error", err)
			}
		}(prospect.Email, prospect.FullName, rejectionReason)
	}

	return nil
}

func buildProspectResponse(p *models.ProspectUser) *dto.ProspectResponse {
	return &dto.ProspectResponse{
		ID:              p.ID,
		FullName:        p.FullName,
		Email:           p.Email,
		Company:         p.Company,
		Title:           p.Title,
		YearsExperience: p.YearsExperience,
		LinkedInURL:     p.LinkedInURL,
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason,
		ReviewedAt:      p.ReviewedAt,
		ReviewedBy:      p.ReviewedBy,
		CreatedAt:       p.CreatedAt,
	}
}
