package contract

import "context"

// ITransactor runs fn as one atomic unit against the store.
// Repository calls made with the ctx passed to fn take part in the transaction.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
