package handlers

import (
	"net/http"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	"github.com/ghuser/qrmenu/pkg/httpx"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// GetMenuHandler handles GET /menu requests from scanned QR codes.
type GetMenuHandler struct {
	svc *appsvcs.Services
}

// NewGetMenuHandler returns a GetMenuHandler backed by the given services.
func NewGetMenuHandler(svc *appsvcs.Services) *GetMenuHandler {
	return &GetMenuHandler{svc: svc}
}

// Execute resolves a shareable link into the diner's menu.
//
//	@Summary		View menu
//	@Description	Resolves ?id= (saved snapshot) or the legacy ?data= (inline JSON) link
//	@Tags			menu
//	@Produce		json
//	@Param			id		query		string	false	"Menu id"
//	@Param			data	query		string	false	"Inline menu JSON (legacy links)"
//	@Success		200		{object}	MenuViewResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/menu [get]
func (h *GetMenuHandler) Execute(w http.ResponseWriter, r *http.Request) {
	menu, err := h.svc.Viewer.Resolve(r.Context(), r.URL.Query())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toMenuViewResponse(menu))
}
