package models

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// NormalizeRole collapses whatever the store holds into the two roles the
// API exposes. Legacy rows carry "cliente".
func NormalizeRole(stored string) UserRole {
	if stored == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleCustomer
}

// Credentials is the login lookup row for a user.
type Credentials struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Role         string `db:"role"`
}

// Identity is the session snapshot captured at login time. It is not
// re-read from the store per request, so role changes only take effect
// at the next login.
type Identity struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
