package prompts

import (
	"context"
	"fmt"
	"time"

	"github.com/codepromptu/server/internal/users"
	"github.com/codepromptu/server/pkg/repository"
)

// Usage is one recorded invocation of a prompt against a language model.
// Rows accumulate per prompt and are removed with it.
type Usage struct {
	ID           int64     `json:"-"`
	Model        string    `json:"model"`
	Provider     string    `json:"provider"`
	Status       string    `json:"status"`
	TokensInput  *int      `json:"tokens_input"`
	TokensOutput *int      `json:"tokens_output"`
	LatencyMs    *int      `json:"latency_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// UsageCommand carries the data needed to record a prompt invocation.
// Token counts and latency are optional; callers that only know the model
// can omit them.
type UsageCommand struct {
	Model        string `json:"model" validate:"required"`
	Provider     string `json:"provider"`
	Status       string `json:"status"`
	TokensInput  *int   `json:"tokens_input"`
	TokensOutput *int   `json:"tokens_output"`
	LatencyMs    *int   `json:"latency_ms"`
}

const selectUsage = `
	SELECT u.id, u.model, u.provider, u.status,
	       u.tokens_input, u.tokens_output, u.latency_ms, u.created_at
	  FROM prompt_usages u
	  JOIN prompts p ON p.id = u.prompt_id`

func scanUsage(s repository.Scanner) (Usage, error) {
	var u Usage
	err := s.Scan(
		&u.ID,
		&u.Model,
		&u.Provider,
		&u.Status,
		&u.TokensInput,
		&u.TokensOutput,
		&u.LatencyMs,
		&u.CreatedAt,
	)
	return u, err
}

// RecordUsage appends a usage row for the prompt matching both guid and the
// actor's scope. The insert selects the prompt row through the scoped filter,
// so a guid outside the scope affects zero rows and reads as ErrNotFound.
func (r *repo) RecordUsage(ctx context.Context, g string, cmd UsageCommand, actor *users.User) error {
	err := recordUsage(ctx, r.db, g, cmd, authorOf(actor))
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrConstraint)
	}

	r.logger.Info("usage recorded", "guid", g, "model", cmd.Model)
	return nil
}

func recordUsage(ctx context.Context, e repository.Executor, g string, cmd UsageCommand, author *string) error {
	return repository.ExecExpectOne(ctx, e, `
		INSERT INTO prompt_usages
		       (prompt_id, model, provider, status, tokens_input, tokens_output, latency_ms)
		SELECT p.id, $2, $3, $4, $5, $6, $7
		  FROM prompts p
		 WHERE p.guid = $1
		   AND p.author IS NOT DISTINCT FROM $8`,
		g, cmd.Model, cmd.Provider, cmd.Status,
		cmd.TokensInput, cmd.TokensOutput, cmd.LatencyMs, author,
	)
}

// ListUsage returns the usage history of the prompt matching both guid and
// the actor's scope, oldest first. A guid outside the scope lists as empty,
// the same as a prompt that has never been invoked.
func (r *repo) ListUsage(ctx context.Context, g string, actor *users.User) ([]Usage, error) {
	q := selectUsage + `
		 WHERE p.guid = $1
		   AND p.author IS NOT DISTINCT FROM $2
		 ORDER BY u.id`

	results, err := repository.QueryMany(ctx, r.db, q, []any{g, authorOf(actor)}, scanUsage)
	if err != nil {
		return nil, fmt.Errorf("list usage: %w", err)
	}
	return results, nil
}
