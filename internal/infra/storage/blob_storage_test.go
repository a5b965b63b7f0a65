package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"

	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/errors"
)

func newTestStorage(t *testing.T, maxSize int64) (*BlobAvatarStorage, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobAvatarStorage(bucket, "https://cdn.example.com/static", maxSize,
		slog.New(slog.NewTextHandler(io.Discard, nil))), bucket
}

func TestBlobAvatarStorage_Upload(t *testing.T) {
	storage, bucket := newTestStorage(t, 16)
	userID := uuid.New()
	ctx := context.Background()

	url, err := storage.Upload(ctx, userID, "image/png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/static/avatars/"+userID.String()+".png", url)

	stored, err := bucket.ReadAll(ctx, "avatars/"+userID.String()+".png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)

	attrs, err := bucket.Attributes(ctx, "avatars/"+userID.String()+".png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobAvatarStorage_UploadReplacesPrevious(t *testing.T) {
	storage, bucket := newTestStorage(t, 16)
	userID := uuid.New()
	ctx := context.Background()

	_, err := storage.Upload(ctx, userID, "image/jpeg; charset=binary", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = storage.Upload(ctx, userID, "IMAGE/JPEG", strings.NewReader("second"))
	require.NoError(t, err)

	stored, err := bucket.ReadAll(ctx, "avatars/"+userID.String()+".jpg")
	require.NoError(t, err)
	assert.Equal(t, "second", string(stored))
}

func TestBlobAvatarStorage_UploadRejects(t *testing.T) {
	storage, _ := newTestStorage(t, 4)
	ctx := context.Background()

	_, err := storage.Upload(ctx, uuid.New(), "application/pdf", strings.NewReader("pdf"))
	assert.True(t, errors.Is(err, domainerrors.ErrAvatarUnsupportedType))

	_, err = storage.Upload(ctx, uuid.New(), "image/png", strings.NewReader("12345"))
	assert.True(t, errors.Is(err, domainerrors.ErrAvatarTooLarge))

	_, err = storage.Upload(ctx, uuid.New(), "image/png", strings.NewReader("1234"))
	assert.NoError(t, err)
}
