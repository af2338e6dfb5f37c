package tui

import "geonotes/models"

type authDoneMsg struct {
	user models.User
	err  error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type markersLoadedMsg struct {
	markers []models.Marker
	err     error
}

type editStartedMsg struct {
	draft models.Draft
	err   error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
