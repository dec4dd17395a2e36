package prompts

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/codepromptu/server/internal/users"
	"github.com/codepromptu/server/pkg/guid"
	"github.com/codepromptu/server/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a prompt repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "prompts"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Create inserts a prompt owned by the actor (NULL author for anonymous),
// then replaces its tag set within the actor's scope. Returns the new guid.
// display_name uniqueness is not enforced at this layer.
func (r *repo) Create(ctx context.Context, cmd CreateCommand, actor *users.User) (string, error) {
	g := guid.New()
	author := authorOf(actor)

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO prompts (guid, content, display_name, author)
			VALUES ($1, $2, $3, $4)`,
			g, cmd.Content, cmd.DisplayName, author,
		)
		if err != nil {
			return struct{}{}, fmt.Errorf("insert prompt: %w", err)
		}

		return struct{}{}, replaceTags(ctx, tx, g, cmd.Tags, author)
	})

	if err != nil {
		return "", repository.MapError(err, ErrNotFound, ErrConstraint)
	}

	r.logger.Info("prompt created", "guid", g, "display_name", cmd.DisplayName)
	return g, nil
}

// Get fetches the prompt matching both guid and the actor's scope, with its
// aggregated tag set. A guid that exists but belongs to a different owner is
// indistinguishable from a nonexistent guid: both return ErrNotFound.
func (r *repo) Get(ctx context.Context, g string, actor *users.User) (*Prompt, error) {
	q := selectPrompt + `
		 WHERE p.guid = $1
		   AND p.author IS NOT DISTINCT FROM $2
		 GROUP BY p.id`

	p, err := repository.QueryOne(ctx, r.db, q, []any{g, authorOf(actor)}, scanPrompt)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrConstraint)
	}
	return &p, nil
}

// GetByName is the same scoped lookup keyed by display_name. When multiple
// prompts share a display_name within scope, the lowest id wins.
func (r *repo) GetByName(ctx context.Context, name string, actor *users.User) (*Prompt, error) {
	q := selectPrompt + `
		 WHERE p.display_name = $1
		   AND p.author IS NOT DISTINCT FROM $2
		 GROUP BY p.id
		 ORDER BY p.id
		 LIMIT 1`

	p, err := repository.QueryOne(ctx, r.db, q, []any{name, authorOf(actor)}, scanPrompt)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrConstraint)
	}
	return &p, nil
}

// List returns every prompt in the actor's scope with aggregated tags,
// in stable insertion order. An empty scope yields an empty slice.
func (r *repo) List(ctx context.Context, actor *users.User) ([]Prompt, error) {
	q := selectPrompt + `
		 WHERE p.author IS NOT DISTINCT FROM $1
		 GROUP BY p.id
		 ORDER BY p.id`

	results, err := repository.QueryMany(ctx, r.db, q, []any{authorOf(actor)}, scanPrompt)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return results, nil
}

// Update sets content and display_name and reassigns the author to the acting
// context, matching on guid alone. Unlike Delete there is no prior-ownership
// check. A guid that matches zero rows is a silent no-op.
func (r *repo) Update(ctx context.Context, g string, cmd UpdateCommand, actor *users.User) error {
	author := authorOf(actor)

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		_, err := tx.ExecContext(ctx, `
			UPDATE prompts
			   SET content = $1, display_name = $2, author = $3, updated_at = now()
			 WHERE guid = $4`,
			cmd.Content, cmd.DisplayName, author, g,
		)
		if err != nil {
			return struct{}{}, fmt.Errorf("update prompt: %w", err)
		}

		return struct{}{}, replaceTags(ctx, tx, g, cmd.Tags, author)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrConstraint)
	}

	r.logger.Info("prompt updated", "guid", g, "display_name", cmd.DisplayName)
	return nil
}

// Delete enforces ownership before mutating: the target's current author is
// fetched by guid alone and compared null-safely to the actor. On a match it
// removes all tag associations within scope, then the prompt row.
func (r *repo) Delete(ctx context.Context, g string, actor *users.User) error {
	author := authorOf(actor)

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := checkOwnership(ctx, tx, g, author); err != nil {
			return struct{}{}, err
		}

		if err := removeAllTags(ctx, tx, g, author); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			`DELETE FROM prompts WHERE guid = $1`,
			g,
		)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrConstraint)
	}

	r.logger.Info("prompt deleted", "guid", g)
	return nil
}

// AddTag links a single normalized tag to the prompt within the actor's
// scope. Linking to a guid outside the scope silently affects zero rows.
func (r *repo) AddTag(ctx context.Context, g, tag string, actor *users.User) error {
	tag = normalizeTag(tag)
	if tag == "" {
		return nil
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, linkTag(ctx, tx, g, tag, authorOf(actor))
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrConstraint)
	}

	r.logger.Info("tag added", "guid", g, "tag", tag)
	return nil
}

// RemoveTag unlinks a tag from the prompt within the actor's scope.
// Zero matches is not an error. The tag row itself is retained.
func (r *repo) RemoveTag(ctx context.Context, g, tag string, actor *users.User) error {
	if err := unlinkTag(ctx, r.db, g, normalizeTag(tag), authorOf(actor)); err != nil {
		return repository.MapError(err, ErrNotFound, ErrConstraint)
	}

	r.logger.Info("tag removed", "guid", g, "tag", tag)
	return nil
}

// checkOwnership fetches the current author of guid without scope filtering
// and compares it null-safely to the acting author. This explicit check is
// what lets Delete distinguish ErrUnauthorized from the scoped queries'
// ErrNotFound.
func checkOwnership(ctx context.Context, q repository.Querier, g string, author *string) error {
	owner, err := repository.QueryOne(
		ctx, q,
		`SELECT author FROM prompts WHERE guid = $1`,
		[]any{g},
		func(s repository.Scanner) (*string, error) {
			var a *string
			err := s.Scan(&a)
			return a, err
		},
	)
	if err != nil {
		return err
	}

	if !sameAuthor(owner, author) {
		return ErrUnauthorized
	}
	return nil
}
