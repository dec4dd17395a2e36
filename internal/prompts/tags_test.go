package prompts

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
)

// recordingExecutor captures each statement and its arguments in order.
type recordingExecutor struct {
	stmts   []string
	args    [][]any
	err     error
	noMatch bool
}

func (e *recordingExecutor) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	e.stmts = append(e.stmts, query)
	e.args = append(e.args, args)

	if e.err != nil {
		return nil, e.err
	}
	if e.noMatch {
		return rowsResult(0), nil
	}
	return rowsResult(1), nil
}

type rowsResult int64

func (r rowsResult) LastInsertId() (int64, error) { return 0, nil }
func (r rowsResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestUpsertTagToleratesDuplicates(t *testing.T) {
	e := &recordingExecutor{}

	for range 2 {
		if err := upsertTag(context.Background(), e, "go"); err != nil {
			t.Fatalf("upsertTag() error: %v", err)
		}
	}

	if len(e.stmts) != 2 {
		t.Fatalf("statements = %d, want 2", len(e.stmts))
	}
	for _, stmt := range e.stmts {
		if !strings.Contains(stmt, "ON CONFLICT (tag) DO NOTHING") {
			t.Errorf("insert is not conflict-safe: %s", stmt)
		}
	}
}

func TestLinkTagUpsertsThenScopedInsert(t *testing.T) {
	e := &recordingExecutor{}
	ada := "ada"

	if err := linkTag(context.Background(), e, "g1", "go", &ada); err != nil {
		t.Fatalf("linkTag() error: %v", err)
	}

	if len(e.stmts) != 2 {
		t.Fatalf("statements = %d, want upsert then association insert", len(e.stmts))
	}

	assoc := e.stmts[1]
	if !strings.Contains(assoc, "IS NOT DISTINCT FROM") {
		t.Errorf("association insert is not author-scoped: %s", assoc)
	}
	if !strings.Contains(assoc, "ON CONFLICT (prompt_id, tag_id) DO NOTHING") {
		t.Errorf("association insert is not conflict-safe: %s", assoc)
	}

	args := e.args[1]
	if args[0] != "g1" || args[1] != "go" {
		t.Errorf("association args = %v, want g1/go", args)
	}
	if author := args[2].(*string); author == nil || *author != "ada" {
		t.Errorf("association author = %v, want ada", author)
	}
}

func TestReplaceTagsRemovesThenRelinks(t *testing.T) {
	e := &recordingExecutor{}

	err := replaceTags(context.Background(), e, "g1", []string{" go ", "", "db"}, nil)
	if err != nil {
		t.Fatalf("replaceTags() error: %v", err)
	}

	// One scoped delete, then an upsert and an association insert per
	// surviving normalized tag.
	if len(e.stmts) != 5 {
		t.Fatalf("statements = %d, want 5", len(e.stmts))
	}
	if !strings.Contains(e.stmts[0], "DELETE FROM prompt_tags") {
		t.Errorf("first statement should remove existing associations: %s", e.stmts[0])
	}
	if author := e.args[0][1].(*string); author != nil {
		t.Errorf("removal author = %v, want nil for anonymous scope", author)
	}

	if e.args[1][0] != "go" || e.args[3][0] != "db" {
		t.Errorf("linked tags = %v/%v, want normalized go then db", e.args[1][0], e.args[3][0])
	}
}

func TestRemoveAllTagsIsScoped(t *testing.T) {
	e := &recordingExecutor{}
	ada := "ada"

	if err := removeAllTags(context.Background(), e, "g1", &ada); err != nil {
		t.Fatalf("removeAllTags() error: %v", err)
	}

	if len(e.stmts) != 1 || !strings.Contains(e.stmts[0], "IS NOT DISTINCT FROM") {
		t.Errorf("removal is not author-scoped: %v", e.stmts)
	}
}

func TestUnlinkTagPassesThroughErrors(t *testing.T) {
	boom := errors.New("connection reset")
	e := &recordingExecutor{err: boom}

	err := unlinkTag(context.Background(), e, "g1", "go", nil)
	if !errors.Is(err, boom) {
		t.Errorf("unlinkTag() = %v, want wrapped %v", err, boom)
	}
}

func TestReplaceTagsStopsOnFirstError(t *testing.T) {
	boom := errors.New("connection reset")
	e := &recordingExecutor{err: boom}

	err := replaceTags(context.Background(), e, "g1", []string{"go", "db"}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("replaceTags() = %v, want wrapped %v", err, boom)
	}
	if len(e.stmts) != 1 {
		t.Errorf("statements = %d, want to stop after the failing removal", len(e.stmts))
	}
}
