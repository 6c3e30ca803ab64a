package models

import "time"

// Review - один отзыв на пару (influencer, reviewer).
// Уникальность пары обеспечивается проверкой в репозитории перед insert.
// OverallRating считается при записи как среднее пяти оценок и не пересчитывается на чтении.
type Review struct {
	BaseModel
	InfluencerID string `gorm:"type:uuid;not null;index"`
	ReviewerID   string `gorm:"type:uuid;not null;index"`

	// Пять оценок 1-5
	Professionalism int `gorm:"not null;check:professionalism >= 1 AND professionalism <= 5"`
	Communication   int `gorm:"not null;check:communication >= 1 AND communication <= 5"`
	ContentQuality  int `gorm:"not null;check:content_quality >= 1 AND content_quality <= 5"`
	ROI             int `gorm:"not null;check:roi >= 1 AND roi <= 5"`
	Reliability     int `gorm:"not null;check:reliability >= 1 AND reliability <= 5"`

	OverallRating float64 `gorm:"not null"`

	Pros           string `gorm:"not null"`
	Cons           string `gorm:"not null"`
	Advice         string `gorm:"not null"`
	WouldWorkAgain bool   `gorm:"not null"`

	// Заполняется фоновым воркером (анализ не реализован, остается NULL)
	SentimentScore *float64

	CreatedAt time.Time `gorm:"default:now()"`

	// Relations
	Influencer Influencer `gorm:"foreignKey:InfluencerID"`
	Reviewer   User       `gorm:"foreignKey:ReviewerID"`
}

// Ratings возвращает пять оценок в фиксированном порядке
func (r *Review) Ratings() [5]int {
	return [5]int{r.Professionalism, r.Communication, r.ContentQuality, r.ROI, r.Reliability}
}
