// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core identity entity, representing a single customer or
// administrator account. Username and Email are unique across the store.
type User struct {
	ID           string `json:"id"`       // Unique identifier (UUID string) for the user.
	Username     string `json:"username"` // Login identifier, unique across the store.
	Email        string `json:"email"`    // Contact email, unique across the store.
	PasswordHash string `json:"-"`        // Salted bcrypt hash; the raw password is never persisted.
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Role         Role   `json:"-"` // Either RoleUser or RoleAdmin; exposed as is_admin in DTOs.
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Roles returns the closed role set granted to this user, suitable for
// embedding into token claims.
func (u *User) Roles() Roles {
	if u.IsAdmin() {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}
