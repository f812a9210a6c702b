// Package dataloader provides per-request DataLoaders that batch the
// per-trip lookups of a trip listing into single SQL calls. Loaders call
// repositories directly; callers only pass ids of trips the user owns.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type destinationRepo interface {
	GetByTripIDs(ctx context.Context, tripIDs []int64) ([]domain.Destination, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Destinations destinationRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	DestinationsByTripID *dataloader.Loader[int64, []domain.Destination]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per request: loaders cache results for their lifetime.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		DestinationsByTripID: newLoader(newDestinationsBatchFn(repos.Destinations)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
