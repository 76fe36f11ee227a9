// Package tui is the terminal front end of the note sync client.
//
// Pages are Bubble Tea models routed by [RootModel]. Collection pages never
// fetch: live snapshots arrive as messages pushed into the program by the
// subscription job through [TUI.ViewHandler].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

var errNoServices = errors.New("client services are not provided")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Session == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Program builds the Bubble Tea program. The caller runs it; it stops when
// the user quits or ctx is cancelled.
func (t *TUI) Program(ctx context.Context, opts ...tea.ProgramOption) *tea.Program {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	return tea.NewProgram(root, opts...)
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	start := collectionPage(s.Notes.Collection())

	return map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, s.Session, start),
		pageRegister: NewRegisterModel(ctx, s.Session, start),
		pageProfile:  NewProfileModel(ctx, s.Profile, start),

		collectionPage(s.Notes.Collection()):  NewCollectionModel(ctx, s.Notes, s.Session, collectionPage(s.People.Collection())),
		collectionPage(s.People.Collection()): NewCollectionModel(ctx, s.People, s.Session, collectionPage(s.Notes.Collection())),
		editorPage(s.Notes.Collection()):      NewEditorModel(ctx, s.Notes),
		editorPage(s.People.Collection()):     NewEditorModel(ctx, s.People),
	}
}

// ViewHandler forwards refreshed views into p.
func ViewHandler(p *tea.Program) service.ViewHandler {
	return func(collection models.Collection, view models.Snapshot) {
		p.Send(viewMsg{collection: collection, view: view})
	}
}

// StreamErrorHandler forwards subscription failures into p.
func StreamErrorHandler(p *tea.Program, logger *logger.Logger) service.StreamErrorHandler {
	return func(collection models.Collection, err error) {
		logger.Err(err).Str("collection", collection.Name).Msg("live updates interrupted")
		p.Send(streamErrMsg{collection: collection, err: err})
	}
}
