package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive     bool     `gorm:"default:true"`
	IsVerified   bool     `gorm:"default:false"`

	// PublicProfile - показывать ли имя автора на его отзывах другим пользователям
	PublicProfile bool `gorm:"default:false"`

	// MustChangePassword - аккаунт создан с временным паролем, нужен setup
	MustChangePassword bool `gorm:"default:false"`

	// Профессиональные данные, скопированные из заявки при одобрении
	FullName        string `gorm:"not null"`
	Company         string
	Title           string
	YearsExperience int
	LinkedInURL     string

	// Ровно один User на одобренную заявку
	ProspectUserID *string `gorm:"type:uuid;uniqueIndex"`

	// Relations
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
