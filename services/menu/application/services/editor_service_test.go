package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/pkg/logger"
	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/editor"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
)

func newEditorService(t *testing.T) (*EditorService, *fixture) {
	t.Helper()
	f := newFixture(t)
	ids, err := editor.NewSnowflakeIDs(1)
	require.NoError(t, err)
	return NewEditorService(f.repo, f.gen, ids, logger.Discard()), f
}

func tea() models.ItemInput {
	return models.ItemInput{Name: "Tea", Price: models.PriceFromFloat(2), Category: models.CategoryBeverages}
}

func TestOpen_SeedsSampleMenuAndCode(t *testing.T) {
	svc, f := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()

	state, err := svc.Open(ctx, client)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(state.MenuID, "menu_"))
	assert.Equal(t, models.DefaultRestaurantName, state.Menu.RestaurantName)
	assert.Len(t, state.Menu.Items, 3)
	assert.Equal(t, CodeReady, state.CodeStatus)
	require.NotNil(t, state.Code)
	assert.Equal(t, testOrigin+"/menu?id="+state.MenuID, state.Code.URL)

	saved, err := f.repo.Load(ctx, state.MenuID)
	require.NoError(t, err)
	assert.Len(t, saved.Items, 3)
}

func TestOpen_SameClientSameMenu(t *testing.T) {
	svc, _ := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()

	first, err := svc.Open(ctx, client)
	require.NoError(t, err)
	second, err := svc.Open(ctx, client)
	require.NoError(t, err)

	assert.Equal(t, first.MenuID, second.MenuID)
	assert.Equal(t, first.Code.URL, second.Code.URL)
}

func TestAddItem_UpdatesDraftAndSnapshot(t *testing.T) {
	svc, f := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()

	item, state, err := svc.AddItem(ctx, client, tea())
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	require.Len(t, state.Menu.Items, 4)
	assert.Equal(t, item.ID, state.Menu.Items[3].ID)

	saved, err := f.repo.Load(ctx, state.MenuID)
	require.NoError(t, err)
	assert.True(t, state.Menu.Equal(saved))
}

func TestAddItem_InvalidLeavesDraftUnchanged(t *testing.T) {
	svc, f := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()

	opened, err := svc.Open(ctx, client)
	require.NoError(t, err)

	_, _, err = svc.AddItem(ctx, client, models.ItemInput{Name: "", Category: models.CategoryMains})
	assert.ErrorIs(t, err, menudomain.ErrInvalidMenuItem)

	draft, err := f.repo.LoadDraft(ctx, opened.MenuID)
	require.NoError(t, err)
	assert.Len(t, draft.Items, 3)
}

func TestUpdateItem(t *testing.T) {
	svc, _ := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()

	in := tea()
	in.Category = models.CategoryDesserts
	in.Name = "Molten Cake"
	item, state, err := svc.UpdateItem(ctx, client, "3", in)
	require.NoError(t, err)

	assert.Equal(t, "3", item.ID)
	assert.Equal(t, "Molten Cake", state.Menu.Items[2].Name)
	assert.Len(t, state.Menu.Items, 3)
}

func TestUpdateItem_Unknown(t *testing.T) {
	svc, _ := newEditorService(t)
	_, _, err := svc.UpdateItem(context.Background(), kv.NewMemoryStore(), "missing", tea())
	assert.ErrorIs(t, err, menudomain.ErrMenuItemNotFound)
}

func TestDeleteItem_UnknownIsNoop(t *testing.T) {
	svc, _ := newEditorService(t)
	state, err := svc.DeleteItem(context.Background(), kv.NewMemoryStore(), "does-not-exist")
	require.NoError(t, err)
	assert.Len(t, state.Menu.Items, 3)
	assert.Equal(t, CodeReady, state.CodeStatus)
}

func TestDeleteItem_EmptyMenuHasNoCode(t *testing.T) {
	svc, f := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()

	var state EditorState
	var err error
	for _, id := range []string{"1", "2", "3"} {
		state, err = svc.DeleteItem(ctx, client, id)
		require.NoError(t, err)
	}

	assert.Empty(t, state.Menu.Items)
	assert.Nil(t, state.Code)
	assert.Equal(t, CodeEmptyMenu, state.CodeStatus)

	reopened, err := svc.Open(ctx, client)
	require.NoError(t, err)
	assert.Empty(t, reopened.Menu.Items, "an emptied draft is not reseeded")

	_, _, err = svc.QRCode(ctx, client)
	assert.ErrorIs(t, err, menudomain.ErrEmptyMenu)

	saved, err := f.repo.Load(ctx, state.MenuID)
	require.NoError(t, err)
	assert.Len(t, saved.Items, 1, "the last published snapshot is kept")
}

func TestAddItem_AfterEmptyingMenu(t *testing.T) {
	svc, _ := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()
	for _, id := range []string{"1", "2", "3"} {
		_, err := svc.DeleteItem(ctx, client, id)
		require.NoError(t, err)
	}

	_, state, err := svc.AddItem(ctx, client, tea())
	require.NoError(t, err)
	require.Len(t, state.Menu.Items, 1)
	assert.Equal(t, models.CategoryBeverages, state.Menu.Items[0].Category)
	assert.Equal(t, CodeReady, state.CodeStatus)
}

func TestSetRestaurantName(t *testing.T) {
	svc, f := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()

	state, err := svc.SetRestaurantName(ctx, client, "  Joe's  ")
	require.NoError(t, err)
	assert.Equal(t, "Joe's", state.Menu.RestaurantName)

	saved, err := f.repo.Load(ctx, state.MenuID)
	require.NoError(t, err)
	assert.Equal(t, "Joe's", saved.RestaurantName)

	state, err = svc.SetRestaurantName(ctx, client, "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultRestaurantName, state.Menu.RestaurantName)
}

func TestSetRestaurantName_Invalid(t *testing.T) {
	svc, _ := newEditorService(t)
	_, err := svc.SetRestaurantName(context.Background(), kv.NewMemoryStore(), "bad\x00name")
	assert.ErrorIs(t, err, menudomain.ErrInvalidRestaurantName)
	assert.NotErrorIs(t, err, menudomain.ErrInvalidMenuItem)
	assert.Contains(t, err.Error(), "restaurant name must not contain control characters")

	_, err = svc.SetRestaurantName(context.Background(), kv.NewMemoryStore(), strings.Repeat("J", 256))
	assert.ErrorIs(t, err, menudomain.ErrInvalidRestaurantName)
	assert.NotContains(t, err.Error(), "item name")
}

func TestOpen_EncodeFailureIsReportedNotReturned(t *testing.T) {
	svc, f := newEditorService(t)
	f.enc.err = errors.New("boom")

	state, err := svc.Open(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, CodeEncodeFailed, state.CodeStatus)
	assert.Nil(t, state.Code)
}

func TestOpen_CorruptDraftIsReseeded(t *testing.T) {
	svc, f := newEditorService(t)
	ctx := context.Background()
	client := kv.NewMemoryStore()
	require.NoError(t, client.Set(ctx, "menuId", "menu_1_abc"))
	require.NoError(t, f.store.Set(ctx, "menu_draft_menu_1_abc", "{"))

	state, err := svc.Open(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, "menu_1_abc", state.MenuID)
	assert.Len(t, state.Menu.Items, 3)
}

func TestQRCode(t *testing.T) {
	svc, _ := newEditorService(t)
	code, menu, err := svc.QRCode(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)
	assert.NotEmpty(t, code.PNG)
	assert.Equal(t, models.DefaultRestaurantName, menu.Name())
}
