package models

// Role values stored on a user account. Any value other than RoleAdmin
// carries no elevated privilege.
const (
	RoleAdmin  = "admin"
	RolePublic = "public"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never serialized in responses.
	PasswordHash string `json:"-"`

	// Role is fixed at registration time and controls access to
	// mutating routes. See RoleAdmin.
	Role string `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
