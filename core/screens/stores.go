package screens

import (
	"context"

	"github.com/jask/contactlabels/internal/database/repository"
)

// ContactStore lists contacts for the contact list screen.
type ContactStore interface {
	List(ctx context.Context) ([]repository.Contact, error)
}

// DetailStore loads and relabels contact details.
type DetailStore interface {
	ListByContact(ctx context.Context, contactID string) ([]repository.Detail, error)
	UpdateLabel(ctx context.Context, id, label string) error
}
