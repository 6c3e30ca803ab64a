package dto

// ProfileSettingsResponse - настройки профиля пользователя
type ProfileSettingsResponse struct {
	PublicProfile bool   `json:"public_profile"`
	FullName      string `json:"full_name"`
	Company       string `json:"company"`
	Title         string `json:"title"`
	Email         string `json:"email"`
}

// UpdateProfileSettingsRequest - смена видимости профиля
type UpdateProfileSettingsRequest struct {
	PublicProfile *bool `json:"public_profile" validate:"required"`
}
