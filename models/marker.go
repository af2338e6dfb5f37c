package models

import "time"

// Marker is an append-only, denormalized geo record produced as a side
// effect of saving a note with a newly picked location. It carries a value
// copy of the note text and attachment references taken at append time.
//
// Markers are never mutated or reconciled afterwards: editing or deleting
// the source note leaves previously appended markers untouched.
type Marker struct {
	// ID is assigned by the marker registry on append.
	ID string `json:"id"`

	// Latitude and Longitude locate the marker. Required, finite floats.
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`

	// Note is the denormalized copy of the source note's text.
	Note string `json:"note" validate:"required"`

	// ImageRef and AudioRef are copies of the source note's attachment
	// references at append time, if present.
	ImageRef *string `json:"image_ref,omitempty"`
	AudioRef *string `json:"audio_ref,omitempty"`

	// CreatedAt is the timestamp when the marker was appended.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Marker model.
func (m *Marker) TableName() string {
	return "markers"
}
