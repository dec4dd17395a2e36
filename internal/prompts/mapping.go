package prompts

import (
	"database/sql"
	"strings"

	"github.com/codepromptu/server/internal/users"
	"github.com/codepromptu/server/pkg/repository"
)

// tagSeparator joins aggregated tag text in selectPrompt. The unit separator
// never occurs in tag text, so tags containing commas round-trip intact.
// Must match the E'\x1f' literal in selectPrompt.
const tagSeparator = "\x1f"

// selectPrompt aggregates each prompt's tags into a single separator-joined
// column. string_agg skips the NULLs produced by the LEFT JOIN, so a prompt
// without tags scans as a NULL aggregate.
const selectPrompt = `
	SELECT p.id, p.guid, p.content, p.display_name, p.author,
	       p.created_at, p.updated_at,
	       string_agg(t.tag, E'\x1f' ORDER BY t.id) AS tags
	  FROM prompts p
	  LEFT JOIN prompt_tags pt ON pt.prompt_id = p.id
	  LEFT JOIN tags t ON t.id = pt.tag_id`

func scanPrompt(s repository.Scanner) (Prompt, error) {
	var p Prompt
	var tags sql.NullString

	err := s.Scan(
		&p.ID,
		&p.Guid,
		&p.Content,
		&p.DisplayName,
		&p.Author,
		&p.CreatedAt,
		&p.UpdatedAt,
		&tags,
	)
	if err != nil {
		return p, err
	}

	p.Tags = splitTags(tags)
	return p, nil
}

func splitTags(agg sql.NullString) []string {
	if !agg.Valid || agg.String == "" {
		return []string{}
	}
	return strings.Split(agg.String, tagSeparator)
}

// authorOf converts an optional acting user into the nullable author value
// used by every scoped query: nil for the anonymous scope.
func authorOf(actor *users.User) *string {
	if actor == nil {
		return nil
	}
	return &actor.Username
}

// sameAuthor compares two nullable author values null-safely.
func sameAuthor(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// normalizeTag trims surrounding whitespace. An empty result means the tag
// should be skipped.
func normalizeTag(tag string) string {
	return strings.TrimSpace(tag)
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := normalizeTag(tag); t != "" {
			normalized = append(normalized, t)
		}
	}
	return normalized
}
