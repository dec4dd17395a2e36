package users

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/codepromptu/server/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a user repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "users"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Find(ctx context.Context, username string) (*User, error) {
	q := `
		SELECT id, username, password, class_key
		  FROM users
		 WHERE username = $1`

	u, err := repository.QueryOne(ctx, r.db, q, []any{username}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

// Authenticate resolves credentials to a user by plain equality comparison.
// Both an unknown username and a password mismatch yield ErrInvalidCredentials
// so callers cannot distinguish the two.
func (r *repo) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := r.Find(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	q := `
		INSERT INTO users (username, password, class_key)
		VALUES ($1, $2, $3)
		RETURNING id, username, password, class_key`

	args := []any{cmd.Username, cmd.Password, cmd.ClassKey}

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user created", "username", u.Username)
	return &u, nil
}

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.ClassKey,
	)
	return u, err
}
