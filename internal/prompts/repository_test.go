package prompts

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"github.com/codepromptu/server/pkg/repository"
)

// ownerConnector opens connections that answer every query with a single
// author row, standing in for the prompts table during ownership checks.
type ownerConnector struct {
	conn driver.Conn
}

func (c ownerConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c ownerConnector) Driver() driver.Driver                        { return ownerDriver{} }

type ownerDriver struct{}

func (ownerDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open by name not supported")
}

type ownerConn struct {
	owner   *string
	missing bool
}

var _ driver.QueryerContext = (*ownerConn)(nil)

func (c *ownerConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *ownerConn) Close() error { return nil }

func (c *ownerConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *ownerConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return &ownerRows{owner: c.owner, done: c.missing}, nil
}

type ownerRows struct {
	owner *string
	done  bool
}

func (r *ownerRows) Columns() []string { return []string{"author"} }
func (r *ownerRows) Close() error      { return nil }

func (r *ownerRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true

	if r.owner == nil {
		dest[0] = nil
	} else {
		dest[0] = *r.owner
	}
	return nil
}

// ownerDB yields a *sql.DB whose guid lookups resolve to the given owner,
// or to no row at all when missing is set.
func ownerDB(t *testing.T, owner *string, missing bool) *sql.DB {
	t.Helper()
	db := sql.OpenDB(ownerConnector{conn: &ownerConn{owner: owner, missing: missing}})
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCheckOwnership(t *testing.T) {
	ada := "ada"
	grace := "grace"

	tests := []struct {
		name  string
		owner *string
		actor *string
		want  error
	}{
		{"owner matches actor", &ada, &ada, nil},
		{"different owner", &ada, &grace, ErrUnauthorized},
		{"owned prompt, anonymous actor", &ada, nil, ErrUnauthorized},
		{"anonymous prompt, named actor", nil, &ada, ErrUnauthorized},
		{"anonymous prompt, anonymous actor", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := ownerDB(t, tt.owner, false)

			err := checkOwnership(context.Background(), db, "g1", tt.actor)
			if !errors.Is(err, tt.want) {
				t.Errorf("checkOwnership() = %v, want %v", err, tt.want)
			}
		})
	}
}

// A guid with no row surfaces as the raw no-rows error, which the callers'
// error mapping turns into ErrNotFound rather than ErrUnauthorized. That is
// what keeps a missing prompt distinguishable from someone else's prompt.
func TestCheckOwnershipMissingGuid(t *testing.T) {
	db := ownerDB(t, nil, true)

	err := checkOwnership(context.Background(), db, "missing", nil)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("checkOwnership() = %v, want sql.ErrNoRows", err)
	}

	mapped := repository.MapError(err, ErrNotFound, ErrConstraint)
	if !errors.Is(mapped, ErrNotFound) {
		t.Errorf("mapped error = %v, want ErrNotFound", mapped)
	}
}
