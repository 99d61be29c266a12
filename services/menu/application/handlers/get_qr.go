package handlers

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/ghuser/qrmenu/pkg/errhttp"
	appsvcs "github.com/ghuser/qrmenu/services/menu/application/services"
)

// GetQRHandler handles GET /api/editor/qr.png requests.
type GetQRHandler struct {
	svc *appsvcs.Services
}

// NewGetQRHandler returns a GetQRHandler backed by the given services.
func NewGetQRHandler(svc *appsvcs.Services) *GetQRHandler {
	return &GetQRHandler{svc: svc}
}

// Execute downloads the menu's QR code as a PNG attachment.
//
//	@Summary		Download QR code
//	@Tags			editor
//	@Produce		png
//	@Success		200	{file}		binary
//	@Failure		409	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/api/editor/qr.png [get]
func (h *GetQRHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, ok := clientScope(w, r)
	if !ok {
		return
	}

	code, menu, err := h.svc.Editor.QRCode(r.Context(), client)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(code.PNG)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": appsvcs.FileName(menu.Name()),
	}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(code.PNG)
}
