package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	"github.com/ghuser/qrmenu/pkg/httpx"
	pkgvalidator "github.com/ghuser/qrmenu/pkg/validator"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// PutItemHandler handles PUT /api/editor/items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces every field of an item except its id.
//
//	@Summary		Update menu item
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Item id"
//	@Param			request	body		ItemRequest	true	"Replacement fields"
//	@Success		200		{object}	ItemMutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/editor/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, ok := clientScope(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	in, err := req.input()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	item, state, err := h.svc.Editor.UpdateItem(r.Context(), client, chi.URLParam(r, "id"), in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ItemMutationResponse{
		Item:   toItemResponse(item),
		Editor: toEditorResponse(state),
	})
}
