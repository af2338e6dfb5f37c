package models

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// AttachmentKind selects the object-store namespace and the expected
// content type of an uploaded attachment.
type AttachmentKind string

const (
	AttachmentImage AttachmentKind = "image"
	AttachmentAudio AttachmentKind = "audio"
)

// Namespace returns the object-store prefix for the kind.
func (k AttachmentKind) Namespace() string {
	switch k {
	case AttachmentAudio:
		return "audio"
	default:
		return "images"
	}
}

// ContentType returns the MIME type sent with uploads of this kind.
func (k AttachmentKind) ContentType() string {
	switch k {
	case AttachmentAudio:
		return "audio/mp4"
	default:
		return "image/jpeg"
	}
}

// Valid reports whether k is a known attachment kind.
func (k AttachmentKind) Valid() bool {
	return k == AttachmentImage || k == AttachmentAudio
}

// Attachment is an opaque local handle to binary data staged for upload:
// either a file path produced by a device picker or an in-memory buffer.
// Exactly one of Path and Data should be set.
type Attachment struct {
	Kind AttachmentKind
	Path string
	Data []byte
}

// Open returns a reader over the attachment bytes. For path-backed
// attachments the file is opened lazily so that a save attempt that fails
// validation never touches the filesystem.
func (a Attachment) Open() (io.ReadCloser, error) {
	if a.Path != "" {
		f, err := os.Open(a.Path)
		if err != nil {
			return nil, fmt.Errorf("open attachment file: %w", err)
		}
		return f, nil
	}
	return io.NopCloser(bytes.NewReader(a.Data)), nil
}

// RemoteRef is the stable retrieval reference of a stored object: the
// generated object name and the publicly fetchable URL resolved for it.
type RemoteRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
