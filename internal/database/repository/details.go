package repository

import (
	"context"
	"fmt"
)

// DetailRepo handles contact details.
type DetailRepo struct {
	db DBTX
}

func NewDetailRepo(db DBTX) *DetailRepo { return &DetailRepo{db: db} }

func (r *DetailRepo) Upsert(ctx context.Context, d Detail) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO contact_details(id, contact_id, kind, value, label, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 kind=excluded.kind,
	 value=excluded.value,
	 label=excluded.label,
	 sort_order=excluded.sort_order,
	 updated_at=CURRENT_TIMESTAMP;
	`, d.ID, d.ContactID, d.Kind, d.Value, d.Label, d.SortOrder)
	return err
}

func (r *DetailRepo) ListByContact(ctx context.Context, contactID string) ([]Detail, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, contact_id, kind, value, label, sort_order, updated_at
	FROM contact_details
	WHERE contact_id = ?
	ORDER BY sort_order, id`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ID, &d.ContactID, &d.Kind, &d.Value, &d.Label, &d.SortOrder, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateLabel sets the label of one detail.
func (r *DetailRepo) UpdateLabel(ctx context.Context, id, label string) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE contact_details SET label = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, label, id)
	if err != nil {
		return fmt.Errorf("update label: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update label: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("detail %s: %w", id, ErrNotFound)
	}
	return nil
}
