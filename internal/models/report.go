package models

import (
	"strings"
	"time"
)

// ReviewReport - жалоба пользователя на отзыв.
// Не более одной жалобы на пару (review, reporter) - проверяется перед insert.
// ReviewedBy/ReviewedAt ставятся только при уходе из статуса open.
type ReviewReport struct {
	BaseModel
	ReviewID   string `gorm:"type:uuid;not null;index"`
	ReporterID string `gorm:"type:uuid;not null;index"`

	// Причины из фиксированного словаря, храним через запятую
	Reasons        string `gorm:"not null"`
	AdditionalInfo *string

	Status     ReportStatus `gorm:"type:varchar(20);not null;default:'open';index"`
	ReviewedBy *string      `gorm:"type:uuid"`
	ReviewedAt *time.Time

	// Relations
	Review   Review `gorm:"foreignKey:ReviewID"`
	Reporter User   `gorm:"foreignKey:ReporterID"`
}

// ReasonList возвращает причины жалобы как срез
func (r *ReviewReport) ReasonList() []string {
	if r.Reasons == "" {
		return nil
	}
	return strings.Split(r.Reasons, ",")
}

// SetReasons склеивает причины для хранения
func (r *ReviewReport) SetReasons(reasons []string) {
	r.Reasons = strings.Join(reasons, ",")
}
