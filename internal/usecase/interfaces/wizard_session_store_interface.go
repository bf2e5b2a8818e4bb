package interfaces

import (
	"context"

	"autopaint_quotation/internal/domain/wizard"
)

// IWizardSessionStore keeps in-progress wizard sessions between requests.
//
// Get returns (nil, nil) when the session does not exist or has expired.

type IWizardSessionStore interface {
	Get(ctx context.Context, id string) (*wizard.Wizard, error)
	Save(ctx context.Context, w *wizard.Wizard) error
	Delete(ctx context.Context, id string) error
}
