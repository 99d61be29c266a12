package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/qrmenu/pkg/logger"
	"github.com/ghuser/qrmenu/pkg/telemetry"
	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
	"github.com/ghuser/qrmenu/services/menu/domain/models"
	"github.com/ghuser/qrmenu/services/menu/domain/repositories"
	"github.com/ghuser/qrmenu/services/menu/infrastructure/codec"
)

// Viewer resolves a scanned link's query parameters into a menu.
type Viewer struct {
	repo     repositories.MenuRepository
	log      logger.Logger
	resolved metric.Int64Counter
}

// NewViewer returns a Viewer reading snapshots from repo.
func NewViewer(repo repositories.MenuRepository, log logger.Logger) *Viewer {
	return &Viewer{
		repo:     repo,
		log:      log,
		resolved: telemetry.Counter("qrmenu.menus.resolved", "Menu view lookups, by link mode and result"),
	}
}

// Resolve looks up the menu a link refers to:
//
//  1. id present: load the saved snapshot. The result is final.
//  2. data present: decode the inline legacy payload.
//  3. neither: not found.
func (v *Viewer) Resolve(ctx context.Context, q url.Values) (models.MenuData, error) {
	switch {
	case q.Has("id"):
		ctx = logger.WithMenuID(ctx, q.Get("id"))
		menu, err := v.repo.Load(ctx, q.Get("id"))
		v.count(ctx, "id", err)
		if err != nil {
			return models.MenuData{}, fmt.Errorf("resolve menu: %w", err)
		}
		return menu, nil
	case q.Has("data"):
		menu, err := decodeInline(q.Get("data"))
		v.count(ctx, "data", err)
		if err != nil {
			v.log.WarnContext(ctx, "malformed inline menu", "error", err)
			return models.MenuData{}, fmt.Errorf("resolve menu: %w: %w", menudomain.ErrMenuNotFound, err)
		}
		return menu, nil
	default:
		v.count(ctx, "none", menudomain.ErrMenuNotFound)
		return models.MenuData{}, fmt.Errorf("resolve menu: no id or data: %w", menudomain.ErrMenuNotFound)
	}
}

// decodeInline parses the data parameter, which query parsing has already
// unescaped once. Links that were escaped twice get one more pass.
func decodeInline(raw string) (models.MenuData, error) {
	menu, err := codec.Decode(raw)
	if err == nil {
		return menu, nil
	}
	unescaped, uerr := url.QueryUnescape(raw)
	if uerr != nil || unescaped == raw {
		return models.MenuData{}, err
	}
	return codec.Decode(unescaped)
}

func (v *Viewer) count(ctx context.Context, mode string, err error) {
	result := "found"
	switch {
	case errors.Is(err, menudomain.ErrCorruptMenu):
		result = "corrupt"
	case errors.Is(err, menudomain.ErrMenuNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	v.resolved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("result", result),
	))
}
