package models

type Influencer struct {
	BaseModel
	Name            string `gorm:"not null;index"`
	Bio             string
	Niche           string `gorm:"index"`
	IsVerified      bool   `gorm:"default:false"`
	ProfileImageURL string

	// Relations
	Handles []InfluencerHandle `gorm:"foreignKey:InfluencerID"`
	Reviews []Review           `gorm:"foreignKey:InfluencerID"`
}

// InfluencerHandle - идентичность инфлюенсера на одной внешней платформе
type InfluencerHandle struct {
	BaseModel
	InfluencerID  string   `gorm:"not null;index"`
	Platform      Platform `gorm:"type:varchar(20);not null"`
	Username      string   `gorm:"not null"`
	ProfileURL    string
	FollowerCount int64 `gorm:"default:0"`
}
