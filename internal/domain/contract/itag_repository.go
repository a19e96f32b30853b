package contract

import (
	"context"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// ITagRepository defines the interface for tag data persistence.
type ITagRepository interface {
	// GetOrCreateTags returns one tag per distinct name, creating the missing ones.
	GetOrCreateTags(ctx context.Context, names []string) ([]*entity.Tag, error)
	GetAllTags(ctx context.Context) ([]*entity.Tag, error)
}
