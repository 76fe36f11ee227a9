package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/models"
)

// Page names.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageProfile  = "profile"
)

func collectionPage(c models.Collection) string {
	return c.Name
}

func editorPage(c models.Collection) string {
	return "edit/" + c.Name
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) routes live collection updates to their page even when it is hidden
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.current == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		cmds := []tea.Cmd{next.Init()}
		if msg.Payload != nil {
			payload := msg.Payload
			cmds = append(cmds, func() tea.Msg { return payload })
		}
		return r, tea.Batch(cmds...)
	case viewMsg:
		return r.updatePage(collectionPage(msg.collection), msg)
	case streamErrMsg:
		return r.updatePage(collectionPage(msg.collection), msg)
	}

	return r.updatePage(r.current, msg)
}

func (r RootModel) updatePage(name string, msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[name]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("go-note-sync", "", "")
	}
	return page.View()
}
