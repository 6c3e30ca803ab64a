package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus - фабрика для невалидных переходов статуса (409)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// --- Auth & Account ---

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен (access, refresh).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrAccountInactive - аккаунт деактивирован администратором.
var ErrAccountInactive = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- Prospects ---

// ErrProspectNotPending - заявка уже рассмотрена, повторное одобрение невозможно.
var ErrProspectNotPending = New(
	CodeInvalidStatus,
	"prospect",
	"Prospect has already been reviewed",
	http.StatusConflict,
)

// ErrProspectEmailTaken - на этот email уже есть заявка или аккаунт.
var ErrProspectEmailTaken = New(
	CodeAlreadyExists,
	"prospect",
	"An application or account with this email already exists",
	http.StatusConflict,
)

// --- Reviews & Reports ---

// ErrReviewAlreadyExists - у пользователя уже есть отзыв на этого инфлюенсера.
var ErrReviewAlreadyExists = New(
	CodeConflict,
	"review",
	"You have already reviewed this influencer",
	http.StatusConflict,
)

// ErrNotReviewAuthor - редактировать отзыв может только его автор.
var ErrNotReviewAuthor = New(
	CodeForbidden,
	"review",
	"Only the review author can modify this review",
	http.StatusForbidden,
)

// ErrReportAlreadyExists - пользователь уже пожаловался на этот отзыв.
var ErrReportAlreadyExists = New(
	CodeConflict,
	"report",
	"You have already reported this review",
	http.StatusConflict,
)
