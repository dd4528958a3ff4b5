package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrNotFound is returned by updates that matched no row.
var ErrNotFound = errors.New("not found")

// Contact represents a contact row.
type Contact struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Detail represents one phone number, email address or SIP URI of a contact.
type Detail struct {
	ID        string
	ContactID string
	Kind      string
	Value     string
	Label     string
	SortOrder int
	UpdatedAt time.Time
}
