package models

// Draft is the working copy of a single note edit session. It references
// newly picked attachments by local handle; attachment references of the
// base note are not duplicated here and are merged in at save time.
//
// A draft survives client restarts via the local cache until the session
// commits or is abandoned.
type Draft struct {
	// NoteID is the id of the note being edited, empty for a new note.
	NoteID string `json:"note_id,omitempty"`

	Text string `json:"text"`

	// Image and Audio are attachments picked during this session. A nil
	// field means "keep whatever the base note has".
	Image *Attachment `json:"image,omitempty"`
	Audio *Attachment `json:"audio,omitempty"`

	// Location is the geo point picked during this session. A nil field
	// keeps the base note's location.
	Location *GeoPoint `json:"location,omitempty"`
}
