package users

import "context"

// System defines the public contract for user domain operations.
type System interface {
	Handler() *Handler

	Find(ctx context.Context, username string) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
	Create(ctx context.Context, cmd CreateCommand) (*User, error)
}
