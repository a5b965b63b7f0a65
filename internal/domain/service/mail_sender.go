package service

import (
	"context"

	"contactbook/internal/domain/entity"
)

// MailSender delivers a mail message, either directly or by queueing it for a worker.
type MailSender interface {
	// Send delivers or enqueues msg.
	Send(ctx context.Context, msg *entity.MailMessage) error

	// Close releases any resources held by the sender
	Close() error
}
