package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/qrmenu/pkg/logger"
	"github.com/ghuser/qrmenu/pkg/telemetry"
	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
	"github.com/ghuser/qrmenu/services/menu/domain/repositories"
	"github.com/ghuser/qrmenu/services/menu/infrastructure/codec"
)

// Encoder renders text as a PNG image.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]byte, error)
}

// Mode selects how a shareable link carries the menu.
type Mode int

const (
	// ModeID links to the saved snapshot: <origin>/menu?id=<menuId>.
	ModeID Mode = iota
	// ModeInline embeds the whole menu: <origin>/menu?data=<json>.
	// Still resolved by the viewer; no current flow produces it.
	ModeInline
)

// Code is a generated QR code and the link it encodes.
type Code struct {
	MenuID string
	URL    string
	PNG    []byte
}

// DataURL returns the image as a data:image/png;base64 URL.
func (c Code) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(c.PNG)
}

// CodeGenerator turns a menu into a shareable link and its QR image.
type CodeGenerator struct {
	repo      repositories.MenuRepository
	enc       Encoder
	origin    string
	log       logger.Logger
	generated metric.Int64Counter
}

// NewCodeGenerator returns a CodeGenerator building links under origin.
func NewCodeGenerator(repo repositories.MenuRepository, enc Encoder, origin string, log logger.Logger) *CodeGenerator {
	return &CodeGenerator{
		repo:      repo,
		enc:       enc,
		origin:    strings.TrimRight(origin, "/"),
		log:       log,
		generated: telemetry.Counter("qrmenu.codes.generated", "QR code generation attempts, by status"),
	}
}

// ShareURL builds the link a diner scans. menu is only read in ModeInline.
func (g *CodeGenerator) ShareURL(mode Mode, menuID string, menu models.MenuData) (string, error) {
	switch mode {
	case ModeID:
		return g.origin + "/menu?id=" + url.QueryEscape(menuID), nil
	case ModeInline:
		payload, err := codec.Encode(models.MenuData{RestaurantName: menu.Name(), Items: menu.Items})
		if err != nil {
			return "", err
		}
		return g.origin + "/menu?data=" + url.QueryEscape(payload), nil
	default:
		return "", fmt.Errorf("unknown share mode %d", mode)
	}
}

// Encode renders link as a PNG. Failures are logged and not retried.
func (g *CodeGenerator) Encode(ctx context.Context, link string) ([]byte, error) {
	png, err := g.enc.Encode(ctx, link)
	if err != nil {
		g.log.ErrorContext(ctx, "qr code encoding failed", "url", link, "error", err)
		g.count(ctx, "encode_failed")
		return nil, fmt.Errorf("%w: %w", menudomain.ErrEncodeFailed, err)
	}
	g.count(ctx, "ready")
	return png, nil
}

// Generate saves menu as the snapshot for menuID and encodes its id-mode link.
// An empty menu returns ErrEmptyMenu without saving or encoding anything.
func (g *CodeGenerator) Generate(ctx context.Context, menuID string, menu models.MenuData) (Code, error) {
	if len(menu.Items) == 0 {
		g.count(ctx, "empty_menu")
		return Code{}, menudomain.ErrEmptyMenu
	}

	snapshot := models.NewMenuData(menu.Name(), menu.Items)
	if err := g.repo.Save(ctx, menuID, snapshot); err != nil {
		return Code{}, fmt.Errorf("save menu: %w", err)
	}

	link, err := g.ShareURL(ModeID, menuID, snapshot)
	if err != nil {
		return Code{}, err
	}
	png, err := g.Encode(ctx, link)
	if err != nil {
		return Code{MenuID: menuID, URL: link}, err
	}
	return Code{MenuID: menuID, URL: link, PNG: png}, nil
}

func (g *CodeGenerator) count(ctx context.Context, status string) {
	g.generated.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is the download name for a menu's QR image.
func FileName(restaurantName string) string {
	if strings.TrimSpace(restaurantName) == "" {
		restaurantName = models.DefaultRestaurantName
	}
	return whitespace.ReplaceAllString(restaurantName, "_") + "_menu_qr.png"
}
