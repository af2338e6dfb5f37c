package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"geonotes/models"
)

func (m appModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	return func() tea.Msg {
		user, err := m.auth.Login(m.ctx, credentials)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(credentials models.Credentials) tea.Cmd {
	return func() tea.Msg {
		user, err := m.auth.Register(m.ctx, credentials)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.services.Notes.ListNotes(m.ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) cmdLoadMarkers() tea.Cmd {
	return func() tea.Msg {
		markers, err := m.services.Notes.ListMarkers(m.ctx)
		return markersLoadedMsg{markers: markers, err: err}
	}
}

func (m appModel) cmdDeleteNote(id string) tea.Cmd {
	return func() tea.Msg {
		return noteDeletedMsg{err: m.services.Notes.DeleteNote(m.ctx, id)}
	}
}

func (m appModel) cmdBeginEdit(base *models.Note) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Editor.Begin(m.ctx, base); err != nil {
			return editStartedMsg{err: err}
		}
		draft, err := m.services.Editor.Draft()
		return editStartedMsg{draft: draft, err: err}
	}
}

// cmdSaveNote pushes the collected form into the edit session and runs one
// save attempt.
func (m appModel) cmdSaveNote(text string, image, audio *models.Attachment, location *models.GeoPoint) tea.Cmd {
	return func() tea.Msg {
		editor := m.services.Editor

		if err := editor.SetText(m.ctx, text); err != nil {
			return noteSavedMsg{err: err}
		}
		if image != nil {
			if err := editor.SetImage(m.ctx, image); err != nil {
				return noteSavedMsg{err: err}
			}
		}
		if audio != nil {
			if err := editor.SetAudio(m.ctx, audio); err != nil {
				return noteSavedMsg{err: err}
			}
		}
		if location != nil {
			if err := editor.SetLocation(m.ctx, location); err != nil {
				return noteSavedMsg{err: err}
			}
		}

		note, err := editor.Save(m.ctx)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdAbandonEdit() tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Editor.Abandon(m.ctx); err != nil {
			return noteSavedMsg{err: err}
		}
		return nil
	}
}

func cmdCopyToClipboard(value string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
