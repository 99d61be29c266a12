// Package editor holds the in-memory menu item collection an operator edits:
// ordered add/update/delete plus the single add-or-edit form that drives them.
//
// An Editor is not safe for concurrent use; build one per request or session.
package editor

import (
	"fmt"

	"github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
	"github.com/ghuser/qrmenu/services/menu/domain/services"
)

// Editor is the authoritative ordered collection of menu items.
type Editor struct {
	items []models.MenuItem
	// used holds every id seen by this editor, deleted ones included.
	used map[string]struct{}
	ids  IDGenerator
	form FormState
}

// New returns an Editor seeded with items, in order.
func New(ids IDGenerator, items []models.MenuItem) *Editor {
	e := &Editor{
		items: make([]models.MenuItem, len(items)),
		used:  make(map[string]struct{}, len(items)),
		ids:   ids,
	}
	copy(e.items, items)
	for _, it := range items {
		e.used[it.ID] = struct{}{}
	}
	return e
}

// Items returns a copy of the collection in insertion order.
func (e *Editor) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the number of items.
func (e *Editor) Len() int {
	return len(e.items)
}

// Get returns the item with id.
func (e *Editor) Get(id string) (models.MenuItem, bool) {
	if i := e.indexOf(id); i >= 0 {
		return e.items[i], true
	}
	return models.MenuItem{}, false
}

// Add validates in, assigns a fresh id and appends the item.
// On validation failure the collection is unchanged.
func (e *Editor) Add(in models.ItemInput) (models.MenuItem, error) {
	in = services.NormalizeItemInput(in)
	if err := services.ValidateItemInput(in); err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", domain.ErrInvalidMenuItem, err)
	}

	item := in.WithID(e.nextID())
	e.items = append(e.items, item)
	return item, nil
}

// Update replaces every field but the id of the item with id, in place.
func (e *Editor) Update(id string, in models.ItemInput) (models.MenuItem, error) {
	i := e.indexOf(id)
	if i < 0 {
		return models.MenuItem{}, fmt.Errorf("update %s: %w", id, domain.ErrMenuItemNotFound)
	}

	in = services.NormalizeItemInput(in)
	if err := services.ValidateItemInput(in); err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", domain.ErrInvalidMenuItem, err)
	}

	e.items[i] = in.WithID(id)
	return e.items[i], nil
}

// Delete removes the item with id and reports whether it existed.
// Deleting an unknown id is a no-op.
func (e *Editor) Delete(id string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	if e.form.Mode == FormEditing && e.form.EditingID == id {
		e.form = FormState{}
	}
	return true
}

// GroupByCategory partitions the collection for presentation.
func (e *Editor) GroupByCategory() []services.Section {
	return services.GroupByCategory(e.items)
}

// Form returns the current form state.
func (e *Editor) Form() FormState {
	return e.form
}

// StartAdd opens the form for a new item. Only valid from idle.
func (e *Editor) StartAdd() error {
	if e.form.Mode != FormIdle {
		return fmt.Errorf("start add while %s: %w", e.form.Mode, domain.ErrInvalidTransition)
	}
	e.form = FormState{Mode: FormAdding}
	return nil
}

// StartEdit opens the form on an existing item and returns it for prefilling.
// Only valid from idle.
func (e *Editor) StartEdit(id string) (models.MenuItem, error) {
	if e.form.Mode != FormIdle {
		return models.MenuItem{}, fmt.Errorf("start edit while %s: %w", e.form.Mode, domain.ErrInvalidTransition)
	}
	item, ok := e.Get(id)
	if !ok {
		return models.MenuItem{}, fmt.Errorf("start edit %s: %w", id, domain.ErrMenuItemNotFound)
	}
	e.form = FormState{Mode: FormEditing, EditingID: id}
	return item, nil
}

// Submit performs the add or update the form is open for and returns to idle.
// A rejected submission leaves the form open.
func (e *Editor) Submit(in models.ItemInput) (models.MenuItem, error) {
	var (
		item models.MenuItem
		err  error
	)
	switch e.form.Mode {
	case FormAdding:
		item, err = e.Add(in)
	case FormEditing:
		item, err = e.Update(e.form.EditingID, in)
	default:
		return models.MenuItem{}, fmt.Errorf("submit while idle: %w", domain.ErrInvalidTransition)
	}
	if err != nil {
		return models.MenuItem{}, err
	}
	e.form = FormState{}
	return item, nil
}

// Cancel closes the form without changes.
func (e *Editor) Cancel() {
	e.form = FormState{}
}

func (e *Editor) nextID() string {
	for {
		id := e.ids.NextID()
		if _, taken := e.used[id]; taken || id == "" {
			continue
		}
		e.used[id] = struct{}{}
		return id
	}
}

func (e *Editor) indexOf(id string) int {
	for i := range e.items {
		if e.items[i].ID == id {
			return i
		}
	}
	return -1
}
