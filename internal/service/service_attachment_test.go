package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"geonotes/internal/logger"
	"geonotes/internal/mock"
	"geonotes/internal/store"
	"geonotes/models"
)

func TestAttachmentService_Upload_Image(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobStorage(ctrl)

	var savedName string
	blobs.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string, r io.Reader) error {
			savedName = name
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, "jpeg bytes", string(data))
			return nil
		})
	blobs.EXPECT().
		URL(gomock.Any()).
		DoAndReturn(func(name string) string {
			return "http://localhost/attachments/" + name
		})

	svc := NewAttachmentService(blobs, logger.Nop())

	ref, err := svc.Upload(context.Background(), models.AttachmentImage, strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref.Name, "images/"), "image objects live under images/, got %q", ref.Name)
	assert.Equal(t, savedName, ref.Name)
	assert.Equal(t, "http://localhost/attachments/"+ref.Name, ref.URL)
}

func TestAttachmentService_Upload_AudioNamespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobStorage(ctrl)

	blobs.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	blobs.EXPECT().
		URL(gomock.Any()).
		Return("http://localhost/x")

	svc := NewAttachmentService(blobs, logger.Nop())

	ref, err := svc.Upload(context.Background(), models.AttachmentAudio, strings.NewReader("m4a bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref.Name, "audio/"), "audio objects live under audio/, got %q", ref.Name)
}

func TestAttachmentService_Upload_GeneratesFreshNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobStorage(ctrl)

	blobs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	blobs.EXPECT().URL(gomock.Any()).Return("http://localhost/x").Times(2)

	svc := NewAttachmentService(blobs, logger.Nop())
	ctx := context.Background()

	first, err := svc.Upload(ctx, models.AttachmentImage, strings.NewReader("a"))
	require.NoError(t, err)
	second, err := svc.Upload(ctx, models.AttachmentImage, strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Name, second.Name)
}

func TestAttachmentService_Upload_UnsupportedKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAttachmentService(mock.NewMockBlobStorage(ctrl), logger.Nop())

	_, err := svc.Upload(context.Background(), models.AttachmentKind("video"), strings.NewReader("x"))
	require.ErrorIs(t, err, ErrUnsupportedAttachmentKind)
}

func TestAttachmentService_Upload_NilBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAttachmentService(mock.NewMockBlobStorage(ctrl), logger.Nop())

	_, err := svc.Upload(context.Background(), models.AttachmentImage, nil)
	require.ErrorIs(t, err, ErrValidationEmptyAttachmentBody)
}

func TestAttachmentService_Upload_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobStorage(ctrl)

	blobs.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(store.ErrObjectAlreadyExists)

	svc := NewAttachmentService(blobs, logger.Nop())

	_, err := svc.Upload(context.Background(), models.AttachmentImage, strings.NewReader("x"))
	require.ErrorIs(t, err, store.ErrObjectAlreadyExists)
}

func TestAttachmentService_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobStorage(ctrl)

	blobs.EXPECT().
		Open(gomock.Any(), "images/abc").
		Return(io.NopCloser(strings.NewReader("bytes")), nil)

	svc := NewAttachmentService(blobs, logger.Nop())

	rc, err := svc.Open(context.Background(), "images/abc")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))
}

func TestAttachmentService_Open_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	blobs := mock.NewMockBlobStorage(ctrl)

	blobs.EXPECT().
		Open(gomock.Any(), "images/missing").
		Return(nil, store.ErrObjectNotFound)

	svc := NewAttachmentService(blobs, logger.Nop())

	_, err := svc.Open(context.Background(), "images/missing")
	require.ErrorIs(t, err, store.ErrObjectNotFound)
}
