package models

import "time"

// UserInfluencerView - отметка "профиль открыт", по одной строке на пару
// (user, influencer). Upsert обновляет только LastSeen.
type UserInfluencerView struct {
	BaseModel
	UserID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_influencer_view"`
	InfluencerID string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_influencer_view"`
	LastSeen     time.Time `gorm:"not null;index"`

	// Relations
	Influencer Influencer `gorm:"foreignKey:InfluencerID"`
}
