package domain

import "time"

// Role is the closed set of principal roles. It is a named type so access
// checks can switch over it exhaustively instead of comparing raw strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated actor attached to an operation. It is
// resolved once at the transport boundary and passed explicitly into every
// core operation; the core never reads ambient identity.
type Principal struct {
	ID    string
	Role  Role
	Name  string
	Email string
}

// Principal returns the principal view of a user.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email}
}
