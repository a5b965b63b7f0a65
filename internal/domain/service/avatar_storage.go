package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AvatarStorage stores avatar images and returns their public URL.
type AvatarStorage interface {
	Upload(ctx context.Context, userID uuid.UUID, contentType string, r io.Reader) (string, error)
}
