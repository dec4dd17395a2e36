package prompts

import (
	"context"
	"fmt"

	"github.com/codepromptu/server/pkg/repository"
)

// Tag store operations. Tags live in a globally deduplicated table with no
// per-owner namespacing; prompts reference them through the prompt_tags
// association table. Tag rows are created lazily on first use and never
// garbage-collected when their last association is removed.

// upsertTag inserts the tag if absent. Inserting an existing tag is a no-op
// on the tag table; it never errors on duplicates.
func upsertTag(ctx context.Context, e repository.Executor, tag string) error {
	_, err := e.ExecContext(
		ctx,
		`INSERT INTO tags (tag) VALUES ($1) ON CONFLICT (tag) DO NOTHING`,
		tag,
	)
	if err != nil {
		return fmt.Errorf("upsert tag: %w", err)
	}
	return nil
}

// linkTag upserts the tag, then inserts an association row selected by
// joining on guid and the author scope. A guid outside the caller's scope
// matches zero rows and silently inserts nothing.
func linkTag(ctx context.Context, e repository.Executor, guid, tag string, author *string) error {
	if err := upsertTag(ctx, e, tag); err != nil {
		return err
	}

	_, err := e.ExecContext(ctx, `
		INSERT INTO prompt_tags (prompt_id, tag_id)
		SELECT p.id, t.id
		  FROM prompts p, tags t
		 WHERE p.guid = $1 AND t.tag = $2
		   AND p.author IS NOT DISTINCT FROM $3
		ON CONFLICT (prompt_id, tag_id) DO NOTHING`,
		guid, tag, author,
	)
	if err != nil {
		return fmt.Errorf("link tag: %w", err)
	}
	return nil
}

// unlinkTag removes the association matching guid, tag, and author scope.
// Zero matches is not an error.
func unlinkTag(ctx context.Context, e repository.Executor, guid, tag string, author *string) error {
	_, err := e.ExecContext(ctx, `
		DELETE FROM prompt_tags pt
		 USING prompts p, tags t
		 WHERE pt.prompt_id = p.id AND pt.tag_id = t.id
		   AND p.guid = $1 AND t.tag = $2
		   AND p.author IS NOT DISTINCT FROM $3`,
		guid, tag, author,
	)
	if err != nil {
		return fmt.Errorf("unlink tag: %w", err)
	}
	return nil
}

// removeAllTags removes every association for guid within the author scope.
// No-op if none exist.
func removeAllTags(ctx context.Context, e repository.Executor, guid string, author *string) error {
	_, err := e.ExecContext(ctx, `
		DELETE FROM prompt_tags pt
		 USING prompts p
		 WHERE pt.prompt_id = p.id
		   AND p.guid = $1
		   AND p.author IS NOT DISTINCT FROM $2`,
		guid, author,
	)
	if err != nil {
		return fmt.Errorf("remove all tags: %w", err)
	}
	return nil
}

// replaceTags removes every association for guid within scope, then links
// each normalized tag from the provided set.
func replaceTags(ctx context.Context, e repository.Executor, guid string, tags []string, author *string) error {
	if err := removeAllTags(ctx, e, guid, author); err != nil {
		return err
	}

	for _, tag := range normalizeTags(tags) {
		if err := linkTag(ctx, e, guid, tag, author); err != nil {
			return err
		}
	}
	return nil
}
