package handlers

import (
	"net/http"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	"github.com/ghuser/qrmenu/pkg/httpx"
	pkgvalidator "github.com/ghuser/qrmenu/pkg/validator"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// PostItemHandler handles POST /api/editor/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute adds an item to the end of the menu.
//
//	@Summary		Add menu item
//	@Description	Appends a new item and regenerates the QR code
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Item to add"
//	@Success		201		{object}	ItemMutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/editor/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	item, state, err := h.svc.Editor.AddItem(r.Context(), client, in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ItemMutationResponse{
		Item:   toItemResponse(item),
		Editor: toEditorResponse(state),
	})
}
