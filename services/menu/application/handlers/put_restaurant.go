package handlers

import (
	"net/http"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	"github.com/ghuser/qrmenu/pkg/httpx"
	pkgvalidator "github.com/ghuser/qrmenu/pkg/validator"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// RestaurantRequest is the request body for PUT /api/editor/restaurant.
type RestaurantRequest struct {
	RestaurantName string `json:"restaurant_name" validate:"max=255" example:"Joe's Diner"`
} // @name RestaurantRequest

// PutRestaurantHandler handles PUT /api/editor/restaurant requests.
type PutRestaurantHandler struct {
	svc *appsvcs.Services
}

// NewPutRestaurantHandler returns a PutRestaurantHandler backed by the given services.
func NewPutRestaurantHandler(svc *appsvcs.Services) *PutRestaurantHandler {
	return &PutRestaurantHandler{svc: svc}
}

// Execute renames the restaurant. An empty name restores the placeholder.
//
//	@Summary		Rename restaurant
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RestaurantRequest	true	"New restaurant name"
//	@Success		200		{object}	EditorResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/editor/restaurant [put]
func (h *PutRestaurantHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, ok := clientScope(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[RestaurantRequest](w, r)
	if !ok {
		return
	}

	state, err := h.svc.Editor.SetRestaurantName(r.Context(), client, req.RestaurantName)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toEditorResponse(state))
}
