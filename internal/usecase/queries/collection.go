package queries

import (
	"context"
)

// Two pagination strategies coexist across the console's screens and must not
// be conflated:
//
//   - index: one large batch fetched up front, sliced into fixed display
//     pages client-side, with the server-reported total driving the control;
//   - incremental: fixed-size server pages merged into a growing list, where
//     the only termination signal is a fetch returning fewer items than the
//     page size.
//
// This file implements the shared merge/termination mechanics once; each
// screen's query picks a strategy.

// MergeByID appends a batch onto an accumulated list, de-duplicating by
// identifier. Order of first appearance is kept; the latest entry for a
// repeated identifier wins.
func MergeByID[T any](acc, batch []T, id func(T) int) []T {
	index := make(map[int]int, len(acc))
	for i, item := range acc {
		index[id(item)] = i
	}
	for _, item := range batch {
		if i, ok := index[id(item)]; ok {
			acc[i] = item
			continue
		}
		index[id(item)] = len(acc)
		acc = append(acc, item)
	}
	return acc
}

// IncrementalPage is the merged result handed to an incremental screen.
type IncrementalPage[T any] struct {
	Items   []T
	HasMore bool
	// Pages is how many server pages were actually fetched; it can be lower
	// than requested when a short page ended the sequence early.
	Pages int
}

// FetchIncremental merges server pages 1..upTo. HasMore flips false exactly
// when a fetch returns fewer items than pageSize, and no further fetch is
// issued after that.
func FetchIncremental[T any](
	ctx context.Context,
	pageSize, upTo int,
	fetch func(ctx context.Context, page int) ([]T, error),
	id func(T) int,
) (IncrementalPage[T], error) {
	if upTo < 1 {
		upTo = 1
	}

	result := IncrementalPage[T]{HasMore: true}
	for page := 1; page <= upTo; page++ {
		batch, err := fetch(ctx, page)
		if err != nil {
			return IncrementalPage[T]{}, err
		}
		result.Items = MergeByID(result.Items, batch, id)
		result.Pages = page
		if len(batch) < pageSize {
			result.HasMore = false
			break
		}
	}
	return result, nil
}
