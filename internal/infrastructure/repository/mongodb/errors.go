package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
)

// translate maps driver errors onto the domain sentinels and adds context.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, contract.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, contract.ErrDuplicate)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
