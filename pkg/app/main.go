package app

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gorilla/sessions"

	"github.com/ghuser/qrmenu/pkg/config"
	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/pkg/logger"
	"github.com/ghuser/qrmenu/pkg/qrcode"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "menu saved", "menu_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Logger       logger.Logger
	Store        kv.Store       // shared menu store: Redis or in-process
	SessionStore sessions.Store // editor sessions; their values are the client scope
	Encoder      *qrcode.Encoder
	IDNode       *snowflake.Node // item id source
}
