package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// INotificationSender delivers email notifications.
type INotificationSender interface {
	Send(ctx context.Context, notification entity.Notification) error
}

type IUUIDGenerator interface {
	NewUUID() string
}
