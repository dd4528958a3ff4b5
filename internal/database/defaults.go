package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/contactlabels/internal/database/repository"
)

type demoDetail struct {
	kind, value, label string
}

type demoContact struct {
	name    string
	details []demoDetail
}

var demoContacts = []demoContact{
	{name: "Ada Lovelace", details: []demoDetail{
		{"phone", "+44 20 7946 0018", "Mobile"},
		{"phone", "+44 20 7946 0321", "Home"},
		{"email", "ada@analytical.example", "Work"},
		{"sip", "sip:ada@voip.example", "Work"},
	}},
	{name: "Grace Hopper", details: []demoDetail{
		{"phone", "+1 202 555 0143", "Work"},
		{"email", "grace@navy.example", "Other"},
	}},
	{name: "Alan Turing", details: []demoDetail{
		{"sip", "sip:alan@bletchley.example", "Home"},
		{"phone", "+44 1908 640404", "Pager"},
	}},
}

// SeedDemo inserts a few demo contacts into an empty database in a single
// transaction, so a failed run leaves nothing behind and the next run retries.
// It is idempotent and safe to run on every startup.
func SeedDemo(ctx context.Context, db *sql.DB) (int, error) {
	n, err := repository.NewContactRepo(db).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		contacts := repository.NewContactRepo(tx)
		details := repository.NewDetailRepo(tx)
		for _, dc := range demoContacts {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("contact:"+dc.name)).String()
			if err := contacts.Upsert(ctx, repository.Contact{ID: id, Name: dc.name}); err != nil {
				return fmt.Errorf("seed contact %q: %w", dc.name, err)
			}
			for i, d := range dc.details {
				detailID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("detail:"+id+":"+d.value)).String()
				err := details.Upsert(ctx, repository.Detail{
					ID:        detailID,
					ContactID: id,
					Kind:      d.kind,
					Value:     d.value,
					Label:     d.label,
					SortOrder: i,
				})
				if err != nil {
					return fmt.Errorf("seed detail %q: %w", d.value, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(demoContacts), nil
}
