package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geonotes/internal/config"
	"geonotes/internal/logger"
)

func newTestBlobStorage(t *testing.T) BlobStorage {
	t.Helper()
	blobs, err := NewBlobFileStorage(config.Blobs{
		Dir:     t.TempDir(),
		BaseURL: "http://localhost:8080/attachments/",
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create blob storage: %v", err)
	}
	return blobs
}

func TestBlobFileStorage_SaveAndOpen(t *testing.T) {
	blobs := newTestBlobStorage(t)
	ctx := context.Background()

	payload := "fake image bytes"
	if err := blobs.Save(ctx, "images/1700000000-abc.jpg", strings.NewReader(payload)); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	rc, err := blobs.Open(ctx, "images/1700000000-abc.jpg")
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(data) != payload {
		t.Errorf("expected %q, got %q", payload, data)
	}
}

func TestBlobFileStorage_SaveRefusesOverwrite(t *testing.T) {
	blobs := newTestBlobStorage(t)
	ctx := context.Background()

	if err := blobs.Save(ctx, "audio/recording.m4a", strings.NewReader("first")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	err := blobs.Save(ctx, "audio/recording.m4a", strings.NewReader("second"))
	if !errors.Is(err, ErrObjectAlreadyExists) {
		t.Fatalf("expected ErrObjectAlreadyExists, got %v", err)
	}
}

func TestBlobFileStorage_OpenMissing(t *testing.T) {
	blobs := newTestBlobStorage(t)

	_, err := blobs.Open(context.Background(), "images/missing.jpg")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestBlobFileStorage_RejectsEscapingNames(t *testing.T) {
	blobs := newTestBlobStorage(t)
	ctx := context.Background()

	for _, name := range []string{"", "../outside", "images/../../etc/passwd", "/absolute"} {
		if err := blobs.Save(ctx, name, strings.NewReader("x")); err == nil {
			t.Errorf("expected save of %q to be rejected", name)
		}
		if _, err := blobs.Open(ctx, name); err == nil {
			t.Errorf("expected open of %q to be rejected", name)
		}
	}
}

func TestBlobFileStorage_FailedCopyLeavesNoObject(t *testing.T) {
	dir := t.TempDir()
	blobs, err := NewBlobFileStorage(config.Blobs{Dir: dir, BaseURL: "http://localhost"}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create blob storage: %v", err)
	}

	err = blobs.Save(context.Background(), "images/broken.jpg", failingReader{})
	if err == nil {
		t.Fatal("expected save to fail")
	}

	if _, statErr := os.Stat(filepath.Join(dir, "images", "broken.jpg")); !os.IsNotExist(statErr) {
		t.Error("expected partial object file to be removed")
	}
}

func TestBlobFileStorage_URL(t *testing.T) {
	blobs := newTestBlobStorage(t)

	got := blobs.URL("images/abc.jpg")
	want := "http://localhost:8080/attachments/images/abc.jpg"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}
