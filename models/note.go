package models

import "time"

// Note is the primary persistence model of the application: a single text
// note with optional media attachments and an optional geolocation.
//
// A persisted Note always carries non-empty Text; the edit workflow rejects
// a save with empty (after trimming) text before any network call is made.
type Note struct {
	// ID is the opaque identifier assigned by the record store on creation.
	ID string `json:"id"`

	// OwnerID is the account that owns this note. Not exposed via JSON;
	// ownership is derived from the authenticated request on the server.
	OwnerID int64 `json:"-"`

	// Text is the note body. Never empty once persisted.
	Text string `json:"text"`

	// ImageRef is the fetchable reference of the attached image, if any.
	ImageRef *string `json:"image_ref,omitempty"`

	// AudioRef is the fetchable reference of the attached recording, if any.
	AudioRef *string `json:"audio_ref,omitempty"`

	// Location is the geographic point picked for this note, if any.
	Location *GeoPoint `json:"location,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GeoPoint is a geographic coordinate pair. Both components are required
// and must be finite; validation enforces the usual WGS84 ranges.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// NoteFields is the full writable field set of a Note. The edit workflow
// assembles one NoteFields value per save attempt: resolved attachment
// references merged with any references kept from the base snapshot.
type NoteFields struct {
	Text     string    `json:"text" validate:"required"`
	ImageRef *string   `json:"image_ref,omitempty"`
	AudioRef *string   `json:"audio_ref,omitempty"`
	Location *GeoPoint `json:"location,omitempty"`
}

// NoteUpdate is an explicit partial patch for an existing Note. Only non-nil
// fields are written; the record store never interprets a missing field as
// a deletion. Updating an unknown id is an error, not an upsert.
type NoteUpdate struct {
	Text     *string   `json:"text,omitempty"`
	ImageRef *string   `json:"image_ref,omitempty"`
	AudioRef *string   `json:"audio_ref,omitempty"`
	Location *GeoPoint `json:"location,omitempty"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n *Note) TableName() string {
	return "notes"
}
