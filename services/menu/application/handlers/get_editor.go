package handlers

import (
	"net/http"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	"github.com/ghuser/qrmenu/pkg/httpx"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// GetEditorHandler handles GET /api/editor requests.
type GetEditorHandler struct {
	svc *appsvcs.Services
}

// NewGetEditorHandler returns a GetEditorHandler backed by the given services.
func NewGetEditorHandler(svc *appsvcs.Services) *GetEditorHandler {
	return &GetEditorHandler{svc: svc}
}

// Execute returns the client's menu and its current QR code.
//
//	@Summary		Open editor
//	@Description	Returns the menu being edited in this session, seeding a sample menu on first visit
//	@Tags			editor
//	@Produce		json
//	@Success		200	{object}	EditorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/editor [get]
func (h *GetEditorHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, ok := clientScope(w, r)
	if !ok {
		return
	}

	state, err := h.svc.Editor.Open(r.Context(), client)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toEditorResponse(state))
}
