package repositories

import (
	"context"

	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
)

// MenuRepository is the persistence interface for menu snapshots and drafts.
// The domain layer owns this interface; infrastructure implements it.
type MenuRepository interface {
	// EnsureMenuID returns the menu id stored in the client scope, minting and
	// storing a new one on first use. Repeated calls return the same id.
	EnsureMenuID(ctx context.Context, client kv.Store) (string, error)

	// Save stamps LastUpdated and stores the snapshot diners resolve by id.
	// Last write wins.
	Save(ctx context.Context, id string, menu models.MenuData) error

	// Load returns the snapshot saved under id. Absent or corrupt snapshots
	// yield an error matching ErrMenuNotFound.
	Load(ctx context.Context, id string) (models.MenuData, error)

	// SaveDraft stores the operator's working copy, which may have no items.
	SaveDraft(ctx context.Context, id string, menu models.MenuData) error

	// LoadDraft returns the working copy; absent drafts yield ErrMenuNotFound.
	LoadDraft(ctx context.Context, id string) (models.MenuData, error)
}
