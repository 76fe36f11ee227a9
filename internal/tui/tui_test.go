package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// execCmd runs cmd and returns its message.
func execCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// collectMsgs runs cmd and flattens batches into their messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collectMsgs(c)...)
	}
	return out
}

// requireNavigate asserts that cmd navigates to page and returns the payload.
func requireNavigate(t *testing.T, cmd tea.Cmd, page string) any {
	t.Helper()
	nav, ok := execCmd(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	require.Equal(t, page, nav.Page)
	return nav.Payload
}

// fakeAuth records calls and answers with err.
type fakeAuth struct {
	err        error
	signedIn   []models.Credentials
	registered []models.Credentials
	signOuts   int
}

func (f *fakeAuth) SignIn(_ context.Context, creds models.Credentials) error {
	f.signedIn = append(f.signedIn, creds)
	return f.err
}

func (f *fakeAuth) SignUp(_ context.Context, creds models.Credentials) error {
	f.registered = append(f.registered, creds)
	return f.err
}

func (f *fakeAuth) SignOut() {
	f.signOuts++
}
