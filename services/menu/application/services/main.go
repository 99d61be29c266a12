package services

import (
	"github.com/ghuser/qrmenu/pkg/app"
	"github.com/ghuser/qrmenu/services/menu/domain/editor"
	"github.com/ghuser/qrmenu/services/menu/infrastructure/persistence/kvstore"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Editor    *EditorService
	Generator *CodeGenerator
	Viewer    *Viewer
}

// New wires all menu application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := kvstore.NewMenuRepository(a.Store, a.Logger)
	gen := NewCodeGenerator(repo, a.Encoder, a.Config.PublicOrigin, a.Logger)
	ids := editor.NewSnowflakeIDsFromNode(a.IDNode)
	return &Services{
		Editor:    NewEditorService(repo, gen, ids, a.Logger),
		Generator: gen,
		Viewer:    NewViewer(repo, a.Logger),
	}
}
