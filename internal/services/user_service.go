package services

import (
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"
	"trustfluence_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfileSettings(db *gorm.DB, userID string) (*dto.ProfileSettingsResponse, error)
	UpdateProfileSettings(db *gorm.DB, userID string, req *dto.UpdateProfileSettingsRequest) (*dto.ProfileSettingsResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfileSettings(db *gorm.DB, userID string) (*dto.ProfileSettingsResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileSettingsResponse{
		PublicProfile: user.PublicProfile,
		FullName:      user.FullName,
		Company:       user.Company,
		Title:         user.Title,
		Email:         user.Email,
	}, nil
}

func (s *userService) UpdateProfileSettings(db *gorm.DB, userID string, req *dto.UpdateProfileSettingsRequest) (*dto.ProfileSettingsResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePublicProfile(db, userID, *req.PublicProfile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfileSettings(db, userID)
}
