package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ContactRepo handles contacts.
type ContactRepo struct {
	db DBTX
}

func NewContactRepo(db DBTX) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Upsert(ctx context.Context, c Contact) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO contacts(id, name) VALUES (?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 updated_at=CURRENT_TIMESTAMP;
	`, c.ID, c.Name)
	return err
}

func (r *ContactRepo) Get(ctx context.Context, id string) (*Contact, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at, updated_at FROM contacts WHERE id = ?`, id)
	var c Contact
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepo) List(ctx context.Context) ([]Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM contacts ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	return n, err
}
