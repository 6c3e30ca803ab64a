package models

import "time"

// ProspectUser - заявка PR-специалиста на доступ к платформе.
// Статус меняется ровно один раз: pending -> approved или pending -> rejected.
// После рассмотрения запись неизменяема через workflow (скрипт сброса - отдельный
// административный обходной путь, не переход state machine).
type ProspectUser struct {
	BaseModel
	FullName        string `gorm:"not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	Company         string `gorm:"not null"`
	Title           string `gorm:"not null"`
	YearsExperience int    `gorm:"not null"`
	LinkedInURL     string

	Status          ProspectStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason *string
	ReviewedAt      *time.Time
	ReviewedBy      *string `gorm:"type:uuid"`
}
