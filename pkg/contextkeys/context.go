package contextkeys

// ContextKey - типизированный ключ для context.Context
type ContextKey string

const (
	// DBContextKey - ключ, под которым middleware кладет *gorm.DB (пул или транзакцию)
	DBContextKey ContextKey = "db"

	// UserIDContextKey - ключ идентификатора аутентифицированного пользователя
	UserIDContextKey ContextKey = "userID"

	// RoleContextKey - ключ роли аутентифицированного пользователя
	RoleContextKey ContextKey = "role"
)
