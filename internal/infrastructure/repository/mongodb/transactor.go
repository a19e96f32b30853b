package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
)

// Transactor runs units of work inside a MongoDB multi-document transaction.
// With transactions disabled, fn runs directly and the unique indexes are the
// only guard.
type Transactor struct {
	client  *mongo.Client
	enabled bool
}

func NewTransactor(client *mongo.Client, enabled bool) *Transactor {
	return &Transactor{client: client, enabled: enabled}
}

var _ contract.ITransactor = (*Transactor)(nil)

// WithinTransaction commits when fn returns nil and aborts otherwise.
// The driver retries fn on transient transaction errors.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
