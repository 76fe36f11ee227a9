package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

// EditorModel is the form of one collection. It edits the selection when the
// sync service has one and fills the draft of a new record otherwise.
//
// The saving flag belongs here: while a submit is in flight every further
// submit is ignored.
type EditorModel struct {
	ctx context.Context
	svc service.ClientSyncService

	// inputs holds one input per collection field, then the image path
	// input for collections with an asset.
	inputs []textinput.Model
	focus  int

	editingID     string
	originalAsset string
	removeAsset   bool

	saving bool
	errMsg string
}

func NewEditorModel(ctx context.Context, svc service.ClientSyncService) *EditorModel {
	return &EditorModel{ctx: ctx, svc: svc}
}

// Init loads the form from the service state.
func (m *EditorModel) Init() tea.Cmd {
	collection := m.svc.Collection()

	m.inputs = m.inputs[:0]
	m.focus = 0
	m.saving, m.errMsg, m.removeAsset = false, "", false
	m.editingID, m.originalAsset = "", ""

	values := m.svc.Draft().Fields
	if selection, ok := m.svc.Selection(); ok {
		values = selection.Fields
		m.editingID = selection.ID
		m.originalAsset = selection.OriginalAsset
	}

	for _, spec := range collection.Fields {
		input := textinput.New()
		input.Placeholder = strings.ToLower(spec.Label)
		input.Width = 50
		input.SetValue(collection.FormatValue(spec.Name, values[spec.Name]))
		m.inputs = append(m.inputs, input)
	}
	if collection.HasAsset() {
		input := textinput.New()
		input.Placeholder = "/path/to/image (empty keeps the current one)"
		input.Width = 50
		m.inputs = append(m.inputs, input)
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	return textinput.Blink
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(submitDoneMsg); ok {
		return m.finishSubmit(done)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.svc.Clear()
			return m, navigate(collectionPage(m.svc.Collection()), nil)
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.removeImage):
			if m.svc.Collection().HasAsset() {
				m.removeAsset = !m.removeAsset
				m.inputs[len(m.inputs)-1].Reset()
			}
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.submit()
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit stages the form into the service and commits it.
func (m *EditorModel) submit() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	collection := m.svc.Collection()
	for i, spec := range collection.Fields {
		value, err := collection.ParseInput(spec.Name, m.inputs[i].Value())
		if err != nil {
			m.errMsg = fmt.Sprintf("%s must be a whole number", spec.Label)
			return m, nil
		}
		m.svc.Stage(spec.Name, value)
	}

	if collection.HasAsset() {
		path := strings.TrimSpace(m.inputs[len(m.inputs)-1].Value())
		switch {
		case path != "":
			m.svc.PickAsset(path)
		case m.removeAsset:
			m.svc.RemoveAsset()
		default:
			m.svc.KeepAsset()
		}
	}

	m.saving = true
	m.errMsg = ""

	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		id, err := svc.Submit(ctx)
		return submitDoneMsg{id: id, err: err}
	}
}

func (m *EditorModel) finishSubmit(done submitDoneMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	back := collectionPage(m.svc.Collection())

	if done.err == nil {
		return m, navigate(back, statusNotice{text: "Saved"})
	}

	// A new record that lost its image already exists remotely: resubmitting
	// the draft would create a second one, so the fix happens through edit.
	var partial *service.PartialCommitError
	if errors.As(done.err, &partial) && m.editingID == "" {
		m.svc.Clear()
		return m, navigate(back, statusNotice{text: app.Describe(done.err), failed: true})
	}

	m.errMsg = app.Describe(done.err)
	return m, nil
}

func (m *EditorModel) moveFocus(step int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *EditorModel) View() string {
	collection := m.svc.Collection()
	if len(m.inputs) < len(collection.Fields) {
		return renderPage(strings.ToUpper(collection.Name), "", "esc: back")
	}

	var b strings.Builder
	for i, spec := range collection.Fields {
		label := spec.Label
		if spec.Required {
			label += "*"
		}
		b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", label, m.inputs[i].View()))
	}

	if collection.HasAsset() {
		current := valueOrDash(m.originalAsset)
		if m.removeAsset {
			current = "will be removed"
		}
		b.WriteString(fmt.Sprintf("%-10s │ %s\n", "Image", fitText(current, 60)))
		b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", "New image", m.inputs[len(m.inputs)-1].View()))
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	writeOutcome(&b, "", m.errMsg)

	title := "NEW " + strings.ToUpper(collection.Name)
	if m.editingID != "" {
		title = "EDIT " + strings.ToUpper(collection.Name)
	}
	hotKeys := "enter/ctrl+s: save │ tab: next field │ esc: cancel"
	if collection.HasAsset() {
		hotKeys += " │ ctrl+r: remove image"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
