package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

func newDestinationsBatchFn(repo destinationRepo) dataloader.BatchFunc[int64, []domain.Destination] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Destination] {
		rows, err := repo.GetByTripIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Destination](len(keys), err)
		}

		grouped := make(map[int64][]domain.Destination, len(keys))
		for _, d := range rows {
			grouped[d.TripID] = append(grouped[d.TripID], d)
		}

		return mapResults(keys, grouped, emptySlice[domain.Destination])
	}
}

// LoadDestinations resolves the destinations of every trip id in one batch.
// The result is in key order.
func (l *Loaders) LoadDestinations(ctx context.Context, tripIDs []int64) ([][]domain.Destination, error) {
	thunks := make([]dataloader.Thunk[[]domain.Destination], len(tripIDs))
	for i, id := range tripIDs {
		thunks[i] = l.DestinationsByTripID.Load(ctx, id)
	}

	out := make([][]domain.Destination, len(tripIDs))
	for i, thunk := range thunks {
		dests, err := thunk()
		if err != nil {
			return nil, err
		}
		out[i] = dests
	}
	return out, nil
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
