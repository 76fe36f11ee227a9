// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/models"
)

// Authenticator is the part of the identity session the auth pages drive.
type Authenticator interface {
	SignIn(ctx context.Context, creds models.Credentials) error
	SignUp(ctx context.Context, creds models.Credentials) error
	SignOut()
}

// AuthModel is the Bubble Tea model of the sign-in and registration screens.
// It renders two text inputs (login and password) and dispatches an async
// auth command on submission. On success it navigates to startPage; the
// subscription job picks the new identity up on its own.
type AuthModel struct {
	ctx       context.Context
	auth      Authenticator
	register  bool
	startPage string

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates the sign-in screen.
func NewLoginModel(ctx context.Context, auth Authenticator, startPage string) *AuthModel {
	return newAuthModel(ctx, auth, startPage, false)
}

// NewRegisterModel creates the registration screen. A successful
// registration signs the new account in.
func NewRegisterModel(ctx context.Context, auth Authenticator, startPage string) *AuthModel {
	return newAuthModel(ctx, auth, startPage, true)
}

func newAuthModel(ctx context.Context, auth Authenticator, startPage string, register bool) *AuthModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AuthModel{
		ctx:       ctx,
		auth:      auth,
		register:  register,
		startPage: startPage,
		inputs:    []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - authResult: clears submitting state; on success clears the form and
//     navigates to the start page, on error shows the reason.
//   - esc: navigates back to the menu.
//   - tab / shift+tab: moves focus between the inputs.
//   - enter: dispatches the async auth command.
//
// All other key events are forwarded to the focused input widget.
func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = app.Describe(result.err)
			return m, nil
		}
		m.reset()
		return m, navigate(m.startPage, statusNotice{text: "Signed in as " + result.login})
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.reset()
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdAuth(models.Credentials{
				Login:    strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *AuthModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Login    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	action := "Sign in"
	if m.register {
		action = "Register"
	}
	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}
	writeOutcome(&b, "", m.errMsg)

	title := "SIGN IN"
	if m.register {
		title = "REGISTRATION"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: confirm")
}

func (m *AuthModel) cmdAuth(creds models.Credentials) tea.Cmd {
	ctx, auth, register := m.ctx, m.auth, m.register

	return func() tea.Msg {
		var err error
		if register {
			err = auth.SignUp(ctx, creds)
		} else {
			err = auth.SignIn(ctx, creds)
		}
		return authResult{login: creds.Login, register: register, err: err}
	}
}

func (m *AuthModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AuthModel) reset() {
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
}
