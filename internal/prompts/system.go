package prompts

import (
	"context"

	"github.com/codepromptu/server/internal/users"
)

// System defines the public contract for prompt domain operations.
// It is the stable facade invoked by HTTP handlers and utilities; callers
// must not depend on storage internals behind it.
type System interface {
	Handler() *Handler

	Create(ctx context.Context, cmd CreateCommand, actor *users.User) (string, error)
	Get(ctx context.Context, guid string, actor *users.User) (*Prompt, error)
	GetByName(ctx context.Context, name string, actor *users.User) (*Prompt, error)
	List(ctx context.Context, actor *users.User) ([]Prompt, error)
	Update(ctx context.Context, guid string, cmd UpdateCommand, actor *users.User) error
	Delete(ctx context.Context, guid string, actor *users.User) error
	AddTag(ctx context.Context, guid, tag string, actor *users.User) error
	RemoveTag(ctx context.Context, guid, tag string, actor *users.User) error
	RecordUsage(ctx context.Context, guid string, cmd UsageCommand, actor *users.User) error
	ListUsage(ctx context.Context, guid string, actor *users.User) ([]Usage, error)
}
