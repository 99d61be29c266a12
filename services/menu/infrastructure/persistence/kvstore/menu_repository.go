// Package kvstore implements repositories.MenuRepository over a kv.Store.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/pkg/logger"
	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
	"github.com/ghuser/qrmenu/services/menu/infrastructure/codec"
)

// Store keys. These are part of the persisted format.
const (
	MenuIDKey      = "menuId"
	menuDataPrefix = "menu_data_"
	draftPrefix    = "menu_draft_"
)

// MenuRepository persists snapshots under "menu_data_<id>" and drafts under
// "menu_draft_<id>" in a shared store.
type MenuRepository struct {
	store kv.Store
	log   logger.Logger
	now   func() time.Time
}

// NewMenuRepository returns a MenuRepository backed by store.
func NewMenuRepository(store kv.Store, log logger.Logger) *MenuRepository {
	return &MenuRepository{store: store, log: log, now: time.Now}
}

// EnsureMenuID returns the id under "menuId" in client, minting one if absent.
func (r *MenuRepository) EnsureMenuID(ctx context.Context, client kv.Store) (string, error) {
	id, ok, err := client.Get(ctx, MenuIDKey)
	if err != nil {
		return "", fmt.Errorf("read menu id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	id = newMenuID(r.now())
	if err := client.Set(ctx, MenuIDKey, id); err != nil {
		return "", fmt.Errorf("store menu id: %w", err)
	}
	r.log.InfoContext(ctx, "menu id minted", "menu_id", id)
	return id, nil
}

// Save stamps LastUpdated with the current time and writes the snapshot.
func (r *MenuRepository) Save(ctx context.Context, id string, menu models.MenuData) error {
	ts := r.now().UTC()
	menu.LastUpdated = &ts
	return r.put(ctx, menuDataPrefix+id, menu)
}

// Load reads the snapshot saved under id.
func (r *MenuRepository) Load(ctx context.Context, id string) (models.MenuData, error) {
	return r.get(ctx, menuDataPrefix+id)
}

// SaveDraft writes the working copy without touching the snapshot.
func (r *MenuRepository) SaveDraft(ctx context.Context, id string, menu models.MenuData) error {
	menu.LastUpdated = nil
	return r.put(ctx, draftPrefix+id, menu)
}

// LoadDraft reads the working copy saved under id.
func (r *MenuRepository) LoadDraft(ctx context.Context, id string) (models.MenuData, error) {
	return r.get(ctx, draftPrefix+id)
}

func (r *MenuRepository) put(ctx context.Context, key string, menu models.MenuData) error {
	payload, err := codec.Encode(menu)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (r *MenuRepository) get(ctx context.Context, key string) (models.MenuData, error) {
	payload, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return models.MenuData{}, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return models.MenuData{}, fmt.Errorf("%s: %w", key, menudomain.ErrMenuNotFound)
	}

	menu, err := codec.Decode(payload)
	if err != nil {
		if errors.Is(err, menudomain.ErrCorruptMenu) {
			r.log.WarnContext(ctx, "corrupt menu payload", "key", key, "error", err)
		}
		return models.MenuData{}, fmt.Errorf("%s: %w: %w", key, menudomain.ErrMenuNotFound, err)
	}
	return menu, nil
}

// newMenuID formats menu_<unix millis>_<9 random hex chars>.
func newMenuID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "menu_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix
}
