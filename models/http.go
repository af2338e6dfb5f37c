package models

// CreateNoteRequest is the transport form of a note creation.
// The owner is derived from the bearer token, never from the body.
type CreateNoteRequest struct {
	Fields NoteFields `json:"fields"`
}

// UpdateNoteRequest is the transport form of a partial note update.
type UpdateNoteRequest struct {
	Update NoteUpdate `json:"update"`
}

// AppendMarkerRequest is the transport form of a marker append.
type AppendMarkerRequest struct {
	Marker Marker `json:"marker"`
}

// NoteSnapshot is one element of the live subscription stream: the full
// current set of the owner's notes at the moment of a change. Consumers
// replace their previous view wholesale; there is no delta encoding.
type NoteSnapshot struct {
	Notes []Note `json:"notes"`
}

// MarkerListing is the pulled (not subscribed) snapshot of the shared
// marker collection.
type MarkerListing struct {
	Markers []Marker `json:"markers"`
}
