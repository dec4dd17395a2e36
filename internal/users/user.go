// Package users implements the user domain: credential storage, basic-auth
// resolution, and registration. Passwords are stored and compared as plain
// text; this package does not hash them.
package users

// User is an authenticated caller context. A nil *User anywhere in the
// service means the anonymous scope.
type User struct {
	ID       int64  `json:"-"`
	Username string `json:"username"`
	Password string `json:"-"`
	ClassKey string `json:"class_key"`
}

// CreateCommand carries the data needed to register a new user.
type CreateCommand struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	ClassKey string `json:"class_key"`
}
