package auth

import "errors"

// RBAC роли
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(claims *Claims) bool {
	return claims.Role == RoleAdmin
}

// IsModeratorOrHigher проверяет является ли пользователь модератором или выше
func IsModeratorOrHigher(claims *Claims) bool {
	return claims.Role == RoleModerator || claims.Role == RoleAdmin
}

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleModerator, RoleUser:
		return nil
	default:
		return errors.New("invalid role")
	}
}
