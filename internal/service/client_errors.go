package service

import "errors"

// Sentinel errors of the client-side edit workflow. Callers branch with
// errors.Is; the concrete cause is carried by wrapping.
var (
	// ErrUpload marks a failed attachment upload. The save attempt is
	// aborted before any record write.
	ErrUpload = errors.New("attachment upload failed")

	// ErrRecordStore marks a failed record commit. Uploads that succeeded
	// earlier in the same attempt are not rolled back.
	ErrRecordStore = errors.New("record store write failed")

	// ErrSaveInProgress is returned when a save is triggered while a
	// previous one for the same session has not finished.
	ErrSaveInProgress = errors.New("save already in progress")

	// ErrNoActiveSession is returned by session operations when no edit
	// session is open.
	ErrNoActiveSession = errors.New("no active edit session")
)
