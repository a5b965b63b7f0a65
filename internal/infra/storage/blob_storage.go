// Package storage keeps avatar images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
	"contactbook/internal/util"
)

const defaultMaxSize = 1 << 20

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// BlobAvatarStorage writes avatars to a bucket and serves them from a public base URL.
type BlobAvatarStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSize       int64
	logger        *slog.Logger
}

// Params holds dependencies for the avatar storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by storage.bucketUrl.
func New(params Params) (service.AvatarStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Avatar storage ready", slog.String("bucket", cfg.BucketURL))

	return NewBlobAvatarStorage(bucket, cfg.PublicBaseURL, cfg.MaxAvatarSize, params.Logger), nil
}

// NewBlobAvatarStorage wraps an open bucket.
func NewBlobAvatarStorage(bucket *blob.Bucket, publicBaseURL string, maxSize int64, logger *slog.Logger) *BlobAvatarStorage {
	return &BlobAvatarStorage{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		maxSize:       maxSize,
		logger:        logger,
	}
}

// Upload stores the image under avatars/<user id><ext>, replacing the previous one.
func (s *BlobAvatarStorage) Upload(ctx context.Context, userID uuid.UUID, contentType string, r io.Reader) (string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := avatarExtensions[mediaType]
	if !ok {
		return "", domainerrors.ErrAvatarUnsupportedType
	}

	limit := s.maxSize
	if limit <= 0 {
		limit = defaultMaxSize
	}

	// One extra byte tells an exact-limit file from an oversized one.
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", errors.Wrap(err, "read avatar")
	}
	if int64(len(data)) > limit {
		return "", domainerrors.ErrAvatarTooLarge.WithDetails("maximum size is " + util.FormatBytes(limit))
	}

	key := path.Join("avatars", userID.String()+ext)
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  mediaType,
		CacheControl: "no-cache",
	}); err != nil {
		return "", errors.Wrapf(err, "write %s", key)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Avatar stored",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return s.publicURL(key), nil
}

func (s *BlobAvatarStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	u, err := url.Parse(s.publicBaseURL)
	if err != nil {
		return strings.TrimRight(s.publicBaseURL, "/") + "/" + key
	}

	return u.JoinPath(key).String()
}
