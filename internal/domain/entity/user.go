package entity

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// Identity is the verified caller of a request, as supplied by the identity provider.
type Identity struct {
	UserID   string
	Username string
	Email    string
	Role     UserRole
}

// IsAdmin reports whether the caller carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == UserRoleAdmin
}
