package auth

import "recruittrack/internal/models"

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// CanSeeStation reports whether the role grants visibility over a whole
// station rather than just the user's own records.
func CanSeeStation(role models.UserRole) bool {
	return role == models.UserRoleStationCommander || role == models.UserRoleAdmin
}

// CanSeeAll reports whether the role grants unscoped visibility.
func CanSeeAll(role models.UserRole) bool {
	return role == models.UserRoleAdmin
}

// ValidateRole rejects roles that cannot be assigned directly. The
// pending station commander role is only reachable through the request
// flow, never at registration.
func ValidateRole(role models.UserRole) bool {
	switch role {
	case models.UserRoleRecruiter, models.UserRoleStationCommander, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}
