package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"trustfluence_backend/internal/auth"
	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"
	"trustfluence_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, req *dto.LogoutRequest) error

	// SetupAccount меняет временный пароль на постоянный
	SetupAccount(db *gorm.DB, userID string, req *dto.SetupAccountRequest) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		// Не различаем "нет пользователя" и "неверный пароль"
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	return s.issueTokens(db, user)
}

func (s *authService) Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	rt, err := s.userRepo.FindRefreshToken(db, req.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(rt.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(db, rt.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, rt.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	// Ротация: старый refresh-токен гасим, выдаем новый
	if err := s.userRepo.DeleteRefreshToken(db, rt.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Logout(db *gorm.DB, req *dto.LogoutRequest) error {
	return s.userRepo.DeleteRefreshToken(db, req.RefreshToken)
}

func (s *authService) SetupAccount(db *gorm.DB, userID string, req *dto.SetupAccountRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(db, userID, hash, false); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// Смена пароля инвалидирует выданные refresh-токены
	return s.userRepo.DeleteUserRefreshTokens(db, userID)
}

func (s *authService) issueTokens(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rt := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(db, rt); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		UserID:             user.ID,
		Role:               string(user.Role),
		MustChangePassword: user.MustChangePassword,
	}, nil
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
