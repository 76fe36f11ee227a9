package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	profileName = iota
	profilePhone
	profilePhoto
)

// ProfileModel shows and edits the profile of the signed-in identity.
type ProfileModel struct {
	ctx      context.Context
	svc      service.ClientProfileService
	backPage string

	inputs   []textinput.Model
	focus    int
	photoURL string

	loading bool
	saving  bool
	status  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, svc service.ClientProfileService, backPage string) *ProfileModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.Width = 40

	phone := textinput.New()
	phone.Placeholder = "phone number"
	phone.Width = 40

	photo := textinput.New()
	photo.Placeholder = "/path/to/photo"
	photo.Width = 40

	return &ProfileModel{
		ctx:      ctx,
		svc:      svc,
		backPage: backPage,
		inputs:   []textinput.Model{name, phone, photo},
	}
}

// Init fetches the profile record.
func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.status, m.errMsg = "", ""
	m.inputs[m.focus].Blur()
	m.focus = profileName
	m.inputs[profileName].Focus()

	ctx, svc := m.ctx, m.svc
	return tea.Batch(textinput.Blink, func() tea.Msg {
		record, err := svc.Get(ctx)
		return profileLoadedMsg{record: record, err: err}
	})
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.Describe(msg.err)
			return m, nil
		}
		profile := models.ProfileFromRecord(msg.record)
		m.inputs[profileName].SetValue(profile.Name)
		m.inputs[profilePhone].SetValue(profile.PhoneNumber)
		m.inputs[profilePhoto].Reset()
		m.photoURL = profile.ProfileImageURL
		return m, nil
	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = app.Describe(msg.err)
			return m, nil
		}
		m.photoURL = msg.url
		m.inputs[profilePhoto].Reset()
		m.status, m.errMsg = "Profile updated", ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(m.backPage, nil)
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.uploadImage):
			path := strings.TrimSpace(m.inputs[profilePhoto].Value())
			if path == "" {
				m.errMsg = "enter the path of the photo first"
				return m, nil
			}
			svc := m.svc
			return m, m.run(func(ctx context.Context) (string, error) {
				return svc.UploadPhoto(ctx, path)
			})
		case key.Matches(keyMsg, keys.removeImage):
			svc := m.svc
			return m, m.run(func(ctx context.Context) (string, error) {
				return "", svc.RemovePhoto(ctx)
			})
		case key.Matches(keyMsg, keys.save):
			fields := models.Profile{
				Name:        strings.TrimSpace(m.inputs[profileName].Value()),
				PhoneNumber: strings.TrimSpace(m.inputs[profilePhone].Value()),
			}.TextFields()
			svc, url := m.svc, m.photoURL
			return m, m.run(func(ctx context.Context) (string, error) {
				return url, svc.Update(ctx, fields)
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// run starts op unless another profile write is in flight. op returns the
// photo URL the profile has once it succeeds.
func (m *ProfileModel) run(op func(ctx context.Context) (string, error)) tea.Cmd {
	if m.saving || m.loading {
		return nil
	}
	m.saving = true
	m.status, m.errMsg = "", ""

	ctx := m.ctx
	return func() tea.Msg {
		url, err := op(ctx)
		return profileSavedMsg{url: url, err: err}
	}
}

func (m *ProfileModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	if m.loading {
		b.WriteString("loading...\n")
	}
	b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", "Name*", m.inputs[profileName].View()))
	b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", "Phone*", m.inputs[profilePhone].View()))
	b.WriteString(fmt.Sprintf("%-10s │ %s\n", "Photo", fitText(valueOrDash(m.photoURL), 60)))
	b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", "New photo", m.inputs[profilePhoto].View()))

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	writeOutcome(&b, m.status, m.errMsg)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"enter: save │ ctrl+u: upload photo │ ctrl+r: remove photo │ esc: back")
}
