package services

import "arabyprompts/internal/models"

// CanAccessAdmin reports whether user may see and mutate the admin surface.
// Only the role is consulted.
func CanAccessAdmin(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}
