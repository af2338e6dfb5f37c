package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"geonotes/internal/service"
	"geonotes/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenEdit
	screenMarkers
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	auth      Authenticator
	buildInfo models.BuildInfo

	currentScreen screen
	welcome       welcomeModel
	login         loginModel
	register      loginModel
	list          listModel
	edit          editModel
	markersView   markersModel

	user models.User

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, auth Authenticator, buildInfo models.BuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		auth:          auth,
		buildInfo:     buildInfo,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(false),
		register:      newLoginModel(true),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteNote(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(humaniseError(msg.err))
			return m, nil
		}
		m.user = msg.user
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadNotes()

	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humaniseError(msg.err))
			return m, nil
		}
		m.list.notes = msg.notes
		if m.list.idx >= len(m.list.notes) {
			m.list.idx = len(m.list.notes) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil

	case markersLoadedMsg:
		m.markersView.loading = false
		if msg.err != nil {
			m.showErrorf(humaniseError(msg.err))
			return m, nil
		}
		m.markersView.markers = msg.markers
		return m, nil

	case editStartedMsg:
		if msg.err != nil {
			m.showErrorf(humaniseError(msg.err))
			m.currentScreen = screenList
			return m, nil
		}
		if msg.draft.Text != "" || msg.draft.Image != nil || msg.draft.Audio != nil || msg.draft.Location != nil {
			m.edit = m.edit.prefill(msg.draft)
		}
		return m, nil

	case noteSavedMsg:
		m.edit.submitting = false
		if msg.err != nil {
			m.showErrorf(humaniseError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadNotes()

	case noteDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(humaniseError(msg.err))
			return m, nil
		}
		m.list.loading = true
		return m, m.cmdLoadNotes()

	case copiedMsg:
		m.list.status = "copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.list.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateAuth(msg, false)
	case screenRegister:
		return m.updateAuth(msg, true)
	case screenList:
		return m.updateList(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenMarkers:
		return m.updateMarkers(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfo(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenEdit:
		body = m.edit.View()
	case screenMarkers:
		body = m.markersView.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAuth(msg tea.Msg, register bool) (tea.Model, tea.Cmd) {
	form := &m.login
	if register {
		form = &m.register
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			*form = form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			*form = form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			login := strings.TrimSpace(form.inputs[0].Value())
			password := form.inputs[1].Value()
			if login == "" || password == "" {
				m.showErrorf("email and password are required")
				return m, nil
			}
			form.submitting = true
			credentials := models.Credentials{Login: login, Password: password}
			if register {
				return m, m.cmdRegister(credentials)
			}
			return m, m.cmdLogin(credentials)
		}
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.newNote):
		m.edit = newEditModel(nil)
		m.currentScreen = screenEdit
		return m, m.cmdBeginEdit(nil)
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.edit = newEditModel(&note)
		m.currentScreen = screenEdit
		return m, m.cmdBeginEdit(&note)
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.pendingDelete = note.ID
		m.showConfirm = true
		m.confirm.question = "Delete this note?"
	case key.Matches(keyMsg, keys.copyURL):
		note, ok := m.list.current()
		if !ok || note.ImageRef == nil {
			return m, nil
		}
		return m, cmdCopyToClipboard(*note.ImageRef)
	case key.Matches(keyMsg, keys.markers):
		m.markersView = markersModel{loading: true}
		m.currentScreen = screenMarkers
		return m, m.cmdLoadMarkers()
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, m.cmdAbandonEdit()
		case key.Matches(keyMsg, keys.tab):
			m.edit = m.edit.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.edit = m.edit.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.edit.submitting {
				return m, nil
			}
			text, image, audio, location, err := m.edit.collect()
			if err != nil {
				m.edit.formErr = err.Error()
				return m, nil
			}
			m.edit.formErr = ""
			m.edit.submitting = true
			return m, m.cmdSaveNote(text, image, audio, location)
		}
	}

	var cmd tea.Cmd
	if m.edit.focus == editFieldText {
		m.edit.text, cmd = m.edit.text.Update(msg)
	} else {
		m.edit.inputs[m.edit.focus-1], cmd = m.edit.inputs[m.edit.focus-1].Update(msg)
	}
	return m, cmd
}

func (m appModel) updateMarkers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenList
	}
	return m, nil
}

func renderBuildInfo(info models.BuildInfo) string {
	return overlayBoxStyle.Render(fmt.Sprintf(
		"%s\n\nversion: %s\ndate:    %s\ncommit:  %s\n\n%s",
		titleStyle.Render("geonotes client"),
		info.Version(), info.Date(), info.Commit(),
		helpStyle.Render("esc close"),
	))
}

func humaniseError(err error) string {
	switch {
	case err == nil:
		return ""
	case strings.Contains(err.Error(), "connection refused"):
		return "server is unreachable"
	default:
		return err.Error()
	}
}
