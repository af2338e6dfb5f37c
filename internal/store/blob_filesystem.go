package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"geonotes/internal/config"
	"geonotes/internal/logger"
)

// blobFileStorage is the filesystem implementation of [BlobStorage]. Each
// object is a single file under the configured directory; the object name's
// namespace prefix ("images/", "audio/") becomes a subdirectory.
//
// Objects are write-once: Save refuses to replace an existing file, matching
// the uploader contract of a fresh generated name per upload.
type blobFileStorage struct {
	dir     string
	baseURL string
	logger  *logger.Logger
}

// NewBlobFileStorage constructs a [BlobStorage] rooted at cfg.Dir that
// resolves object URLs under cfg.BaseURL.
func NewBlobFileStorage(cfg config.Blobs, logger *logger.Logger) (BlobStorage, error) {
	if cfg.Dir == "" {
		return nil, errors.New("blob storage directory is not configured")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob storage dir: %w", err)
	}

	return &blobFileStorage{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}, nil
}

// Save streams r into a new file named after the object. The write goes
// through O_EXCL so a name collision surfaces as [ErrObjectAlreadyExists]
// instead of silently replacing another upload's bytes.
func (b *blobFileStorage) Save(ctx context.Context, name string, r io.Reader) error {
	log := logger.FromContext(ctx)

	path, err := b.objectPath(name)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create object namespace dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrObjectAlreadyExists
		}
		log.Err(err).Str("func", "blobFileStorage.Save").Str("object", name).Msg("failed to create object file")
		return fmt.Errorf("create object file: %w", err)
	}

	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path) // do not leave a half-written object behind
		log.Err(err).Str("func", "blobFileStorage.Save").Str("object", name).Msg("failed to write object bytes")
		return fmt.Errorf("write object bytes: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("close object file: %w", err)
	}

	return nil
}

// Open returns a reader over a previously written object.
func (b *blobFileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := b.objectPath(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("open object file: %w", err)
	}

	return f, nil
}

// URL resolves the publicly fetchable URL of an object name.
func (b *blobFileStorage) URL(name string) string {
	return b.baseURL + "/" + name
}

// objectPath maps an object name onto the storage directory, rejecting
// names that would escape it.
func (b *blobFileStorage) objectPath(name string) (string, error) {
	if name == "" || strings.Contains(name, "..") || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("invalid object name %q", name)
	}

	return filepath.Join(b.dir, filepath.FromSlash(name)), nil
}
