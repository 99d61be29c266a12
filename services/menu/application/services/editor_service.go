package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/pkg/logger"
	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/editor"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
	"github.com/ghuser/qrmenu/services/menu/domain/repositories"
	domainsvcs "github.com/ghuser/qrmenu/services/menu/domain/services"
)

// CodeStatus says whether an editor state carries a QR code.
type CodeStatus string

const (
	CodeReady        CodeStatus = "ready"
	CodeEmptyMenu    CodeStatus = "empty_menu"
	CodeEncodeFailed CodeStatus = "encode_failed"
)

// EditorState is what the operator sees after each request: the working
// copy plus the code regenerated from it.
type EditorState struct {
	MenuID     string
	Menu       models.MenuData
	Code       *Code
	CodeStatus CodeStatus
}

// EditorService applies operator edits to the client's draft and keeps the
// published snapshot and QR code in step with it.
type EditorService struct {
	repo repositories.MenuRepository
	gen  *CodeGenerator
	ids  editor.IDGenerator
	log  logger.Logger
}

// NewEditorService returns an EditorService.
func NewEditorService(repo repositories.MenuRepository, gen *CodeGenerator, ids editor.IDGenerator, log logger.Logger) *EditorService {
	return &EditorService{repo: repo, gen: gen, ids: ids, log: log}
}

// Open returns the client's current state, seeding a sample menu on first use.
func (s *EditorService) Open(ctx context.Context, client kv.Store) (EditorState, error) {
	ctx, id, draft, err := s.load(ctx, client)
	if err != nil {
		return EditorState{}, err
	}
	return s.regenerate(ctx, id, draft)
}

// SetRestaurantName renames the menu. A blank name restores the placeholder.
func (s *EditorService) SetRestaurantName(ctx context.Context, client kv.Store, name string) (EditorState, error) {
	name = strings.TrimSpace(name)
	if err := domainsvcs.ValidateRestaurantName(name); err != nil {
		return EditorState{}, fmt.Errorf("%w: %w", menudomain.ErrInvalidRestaurantName, err)
	}

	ctx, id, draft, err := s.load(ctx, client)
	if err != nil {
		return EditorState{}, err
	}
	return s.commit(ctx, id, models.NewMenuData(name, draft.Items))
}

// AddItem appends a new item through the add form.
func (s *EditorService) AddItem(ctx context.Context, client kv.Store, in models.ItemInput) (models.MenuItem, EditorState, error) {
	return s.edit(ctx, client, func(ed *editor.Editor) (models.MenuItem, error) {
		if err := ed.StartAdd(); err != nil {
			return models.MenuItem{}, err
		}
		return ed.Submit(in)
	})
}

// UpdateItem replaces the fields of item id through the edit form.
func (s *EditorService) UpdateItem(ctx context.Context, client kv.Store, id string, in models.ItemInput) (models.MenuItem, EditorState, error) {
	return s.edit(ctx, client, func(ed *editor.Editor) (models.MenuItem, error) {
		if _, err := ed.StartEdit(id); err != nil {
			return models.MenuItem{}, err
		}
		return ed.Submit(in)
	})
}

// DeleteItem removes item id. Unknown ids leave the menu unchanged.
func (s *EditorService) DeleteItem(ctx context.Context, client kv.Store, id string) (EditorState, error) {
	ctx, menuID, draft, err := s.load(ctx, client)
	if err != nil {
		return EditorState{}, err
	}

	ed := editor.New(s.ids, draft.Items)
	if !ed.Delete(id) {
		s.log.DebugContext(ctx, "delete of unknown item ignored", "item_id", id)
		return s.regenerate(ctx, menuID, draft)
	}
	return s.commit(ctx, menuID, models.NewMenuData(draft.Name(), ed.Items()))
}

// QRCode regenerates the code for the client's menu.
// Returns ErrEmptyMenu when there is nothing to show.
func (s *EditorService) QRCode(ctx context.Context, client kv.Store) (Code, models.MenuData, error) {
	ctx, id, draft, err := s.load(ctx, client)
	if err != nil {
		return Code{}, models.MenuData{}, err
	}
	code, err := s.gen.Generate(ctx, id, draft)
	if err != nil {
		return Code{}, draft, err
	}
	return code, draft, nil
}

func (s *EditorService) edit(ctx context.Context, client kv.Store, apply func(*editor.Editor) (models.MenuItem, error)) (models.MenuItem, EditorState, error) {
	ctx, id, draft, err := s.load(ctx, client)
	if err != nil {
		return models.MenuItem{}, EditorState{}, err
	}

	ed := editor.New(s.ids, draft.Items)
	item, err := apply(ed)
	if err != nil {
		return models.MenuItem{}, EditorState{}, err
	}

	state, err := s.commit(ctx, id, models.NewMenuData(draft.Name(), ed.Items()))
	if err != nil {
		return models.MenuItem{}, EditorState{}, err
	}
	return item, state, nil
}

// load resolves the client's menu id and draft, returning a context whose
// log records carry the menu id. A missing or unreadable draft starts over
// from the sample menu.
func (s *EditorService) load(ctx context.Context, client kv.Store) (context.Context, string, models.MenuData, error) {
	id, err := s.repo.EnsureMenuID(ctx, client)
	if err != nil {
		return ctx, "", models.MenuData{}, fmt.Errorf("menu id: %w", err)
	}
	ctx = logger.WithMenuID(ctx, id)

	draft, err := s.repo.LoadDraft(ctx, id)
	switch {
	case err == nil:
		return ctx, id, draft, nil
	case errors.Is(err, menudomain.ErrMenuNotFound):
		draft = models.NewMenuData(models.DefaultRestaurantName, models.SampleItems())
		if err := s.repo.SaveDraft(ctx, id, draft); err != nil {
			return ctx, "", models.MenuData{}, fmt.Errorf("seed draft: %w", err)
		}
		s.log.InfoContext(ctx, "menu draft seeded")
		return ctx, id, draft, nil
	default:
		return ctx, "", models.MenuData{}, fmt.Errorf("load draft: %w", err)
	}
}

func (s *EditorService) commit(ctx context.Context, id string, draft models.MenuData) (EditorState, error) {
	if err := s.repo.SaveDraft(ctx, id, draft); err != nil {
		return EditorState{}, fmt.Errorf("save draft: %w", err)
	}
	return s.regenerate(ctx, id, draft)
}

// regenerate refreshes the snapshot and code. Rendering failures are reported
// in the state; storage failures are errors.
func (s *EditorService) regenerate(ctx context.Context, id string, draft models.MenuData) (EditorState, error) {
	state := EditorState{MenuID: id, Menu: draft}

	code, err := s.gen.Generate(ctx, id, draft)
	switch {
	case err == nil:
		state.Code = &code
		state.CodeStatus = CodeReady
	case errors.Is(err, menudomain.ErrEmptyMenu):
		state.CodeStatus = CodeEmptyMenu
	case errors.Is(err, menudomain.ErrEncodeFailed):
		state.CodeStatus = CodeEncodeFailed
	default:
		return EditorState{}, err
	}
	return state, nil
}
