package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// CollectionModel lists the live view of one collection. It never fetches:
// the view is whatever the subscription last delivered.
type CollectionModel struct {
	ctx     context.Context
	svc     service.ClientSyncService
	auth    Authenticator
	tabPage string

	view       models.Snapshot
	idx        int
	confirming bool
	status     string
	errMsg     string
}

// NewCollectionModel creates the list page of svc's collection. tabPage is
// the page the tab key switches to.
func NewCollectionModel(ctx context.Context, svc service.ClientSyncService, auth Authenticator, tabPage string) *CollectionModel {
	return &CollectionModel{
		ctx:     ctx,
		svc:     svc,
		auth:    auth,
		tabPage: tabPage,
	}
}

// Init re-reads the current view so a page opened between two snapshots is
// not stale.
func (m *CollectionModel) Init() tea.Cmd {
	collection, svc := m.svc.Collection(), m.svc
	return func() tea.Msg {
		return viewMsg{collection: collection, view: svc.View()}
	}
}

func (m *CollectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		m.view = msg.view
		m.clampIndex()
		return m, nil
	case streamErrMsg:
		m.errMsg = app.Describe(msg.err)
		return m, nil
	case statusNotice:
		if msg.failed {
			m.status, m.errMsg = "", msg.text
		} else {
			m.status, m.errMsg = msg.text, ""
		}
		return m, nil
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = app.Describe(msg.err)
			return m, nil
		}
		m.status, m.errMsg = "Deleted", ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		return m.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.view)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.svc.Clear()
		m.status, m.errMsg = "", ""
		return m, navigate(editorPage(m.svc.Collection()), nil)
	case key.Matches(keyMsg, keys.edit):
		record, ok := m.current()
		if !ok {
			m.status = "No records"
			return m, nil
		}
		if err := m.svc.Select(record.ID); err != nil {
			m.errMsg = app.Describe(err)
			return m, nil
		}
		m.status, m.errMsg = "", ""
		return m, navigate(editorPage(m.svc.Collection()), nil)
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); !ok {
			m.status = "No records"
			return m, nil
		}
		m.confirming = true
	case key.Matches(keyMsg, keys.copy):
		m.copyCurrent()
	case key.Matches(keyMsg, keys.tab):
		if m.tabPage != "" {
			return m, navigate(m.tabPage, nil)
		}
	case key.Matches(keyMsg, keys.profile):
		return m, navigate(pageProfile, nil)
	case key.Matches(keyMsg, keys.logout):
		m.auth.SignOut()
		m.view, m.idx, m.status, m.errMsg = nil, 0, "", ""
		return m, navigate(pageMenu, signedOutNotice{})
	}

	return m, nil
}

func (m *CollectionModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirming = false
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(record.ID)
	case key.Matches(keyMsg, keys.no):
		m.confirming = false
	}
	return m, nil
}

func (m *CollectionModel) cmdDelete(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return deleteDoneMsg{err: svc.Delete(ctx, id)}
	}
}

// copyCurrent puts the note content on the clipboard, or every field value
// for collections without a content field.
func (m *CollectionModel) copyCurrent() {
	record, ok := m.current()
	if !ok {
		m.status = "Nothing to copy"
		return
	}

	text := copyText(m.svc.Collection(), record)
	if text == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := writeClipboard(text); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status, m.errMsg = "Copied", ""
}

func copyText(c models.Collection, r models.Record) string {
	if _, ok := c.Field("content"); ok {
		return r.Fields.String("content")
	}

	values := make([]string, 0, len(c.Fields))
	for _, spec := range c.Fields {
		if v := c.FormatValue(spec.Name, r.Fields[spec.Name]); v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, " ")
}

func (m *CollectionModel) current() (models.Record, bool) {
	if m.idx < 0 || m.idx >= len(m.view) {
		return models.Record{}, false
	}
	return m.view[m.idx], true
}

func (m *CollectionModel) clampIndex() {
	if m.idx >= len(m.view) {
		m.idx = len(m.view) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *CollectionModel) View() string {
	collection := m.svc.Collection()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-4s │ %-30s", "#", "Title"))
	for _, spec := range trailingFields(collection) {
		b.WriteString(fmt.Sprintf(" │ %-20s", spec.Label))
	}
	if collection.HasAsset() {
		b.WriteString(" │ Image")
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if len(m.view) == 0 {
		b.WriteString("no records yet, press n to add one\n")
	}
	for i, record := range m.view {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%-4s │ %-30s", fmt.Sprintf("%s %d", cursor, i+1), fitText(valueOrDash(collection.Title(record)), 30)))
		for _, spec := range trailingFields(collection) {
			value := collection.FormatValue(spec.Name, record.Fields[spec.Name])
			b.WriteString(fmt.Sprintf(" │ %-20s", fitText(valueOrDash(value), 20)))
		}
		if collection.HasAsset() {
			marker := "-"
			if record.Fields.String(collection.AssetField) != "" {
				marker = "yes"
			}
			b.WriteString(" │ " + marker)
		}
		b.WriteString("\n")
	}

	if m.confirming {
		if record, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{message: collection.Title(record)}.View())
			b.WriteString("\n")
		}
	}
	writeOutcome(&b, m.status, m.errMsg)

	hotKeys := "n: new │ e: edit │ d: delete │ c: copy │ tab: switch │ p: profile │ l: sign out"
	return renderPage(strings.ToUpper(collection.Name), strings.TrimRight(b.String(), "\n"), hotKeys)
}

// trailingFields are the columns shown after the title.
func trailingFields(c models.Collection) []models.FieldSpec {
	if len(c.Fields) < 2 {
		return nil
	}
	return c.Fields[1:]
}
