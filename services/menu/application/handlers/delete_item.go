package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	"github.com/ghuser/qrmenu/pkg/httpx"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// DeleteItemHandler handles DELETE /api/editor/items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item. Deleting an unknown id leaves the menu unchanged.
//
//	@Summary		Delete menu item
//	@Tags			editor
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	EditorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/editor/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, ok := clientScope(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Editor.DeleteItem(r.Context(), client, chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toEditorResponse(state))
}
