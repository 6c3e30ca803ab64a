package validator

import (
	"log"

	"trustfluence_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-platform': платформа хэндла инфлюенсера
	mustRegister("is-platform", validatePlatform)

	// 'is-report-reason': каждая причина жалобы из фиксированного словаря
	mustRegister("is-report-reason", validateReportReasons)

	// 'is-report-status': статус жалобы
	mustRegister("is-report-status", validateReportStatus)
}

// --- Функции валидации ---

func validatePlatform(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	switch models.Platform(value) {
	case models.PlatformTwitter, models.PlatformInstagram, models.PlatformTikTok, models.PlatformYouTube:
		return true
	default:
		return false
	}
}

// validateReportReasons применяется к срезу строк целиком (dive не нужен)
func validateReportReasons(fl validator.FieldLevel) bool {
	reasons, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	for _, reason := range reasons {
		if !models.IsValidReportReason(reason) {
			return false
		}
	}
	return true
}

func validateReportStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidReportStatus(models.ReportStatus(value))
}
