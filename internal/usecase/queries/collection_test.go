//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int
	Label string
}

func itemID(i item) int { return i.ID }

func TestMergeByID(t *testing.T) {
	t.Run("keeps order of first appearance", func(t *testing.T) {
		acc := []item{{ID: 1, Label: "a"}, {ID: 2, Label: "b"}}
		merged := queries.MergeByID(acc, []item{{ID: 3, Label: "c"}}, itemID)

		want := []item{{ID: 1, Label: "a"}, {ID: 2, Label: "b"}, {ID: 3, Label: "c"}}
		if diff := cmp.Diff(want, merged); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("latest entry wins for a repeated identifier", func(t *testing.T) {
		acc := []item{{ID: 1, Label: "stale"}, {ID: 2, Label: "b"}}
		merged := queries.MergeByID(acc, []item{{ID: 1, Label: "fresh"}}, itemID)

		want := []item{{ID: 1, Label: "fresh"}, {ID: 2, Label: "b"}}
		if diff := cmp.Diff(want, merged); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate inside one batch collapses", func(t *testing.T) {
		merged := queries.MergeByID(nil, []item{{ID: 7, Label: "first"}, {ID: 7, Label: "second"}}, itemID)
		require.Len(t, merged, 1)
		assert.Equal(t, "second", merged[0].Label)
	})
}

func TestFetchIncremental(t *testing.T) {
	page := func(ids ...int) []item {
		items := make([]item, 0, len(ids))
		for _, id := range ids {
			items = append(items, item{ID: id})
		}
		return items
	}

	t.Run("full pages keep has_more true", func(t *testing.T) {
		pages := map[int][]item{1: page(1, 2), 2: page(3, 4)}
		result, err := queries.FetchIncremental(context.Background(), 2, 2,
			func(_ context.Context, p int) ([]item, error) { return pages[p], nil }, itemID)

		require.NoError(t, err)
		assert.True(t, result.HasMore)
		assert.Equal(t, 2, result.Pages)
		assert.Len(t, result.Items, 4)
	})

	t.Run("short page ends the sequence and stops fetching", func(t *testing.T) {
		var fetched []int
		pages := map[int][]item{1: page(1, 2), 2: page(3)}
		result, err := queries.FetchIncremental(context.Background(), 2, 5,
			func(_ context.Context, p int) ([]item, error) {
				fetched = append(fetched, p)
				return pages[p], nil
			}, itemID)

		require.NoError(t, err)
		assert.False(t, result.HasMore)
		assert.Equal(t, 2, result.Pages)
		assert.Equal(t, []int{1, 2}, fetched, "no fetch may follow a short page")
		assert.Len(t, result.Items, 3)
	})

	t.Run("empty page still terminates", func(t *testing.T) {
		result, err := queries.FetchIncremental(context.Background(), 2, 3,
			func(_ context.Context, p int) ([]item, error) {
				if p == 1 {
					return page(1, 2), nil
				}
				return nil, nil
			}, itemID)

		require.NoError(t, err)
		assert.False(t, result.HasMore)
		assert.Equal(t, 2, result.Pages)
		assert.Len(t, result.Items, 2)
	})

	t.Run("overlapping pages deduplicate with latest winning", func(t *testing.T) {
		pages := map[int][]item{
			1: {{ID: 1, Label: "old"}, {ID: 2, Label: "b"}},
			2: {{ID: 1, Label: "new"}, {ID: 3, Label: "c"}},
		}
		result, err := queries.FetchIncremental(context.Background(), 2, 2,
			func(_ context.Context, p int) ([]item, error) { return pages[p], nil }, itemID)

		require.NoError(t, err)
		want := []item{{ID: 1, Label: "new"}, {ID: 2, Label: "b"}, {ID: 3, Label: "c"}}
		if diff := cmp.Diff(want, result.Items); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fetch failure surfaces and discards partial state", func(t *testing.T) {
		boom := errs.New("upstream down")
		result, err := queries.FetchIncremental(context.Background(), 2, 3,
			func(_ context.Context, p int) ([]item, error) {
				if p == 2 {
					return nil, boom
				}
				return page(1, 2), nil
			}, itemID)

		require.Error(t, err)
		assert.Empty(t, result.Items)
	})

	t.Run("requests below one clamp to a single page", func(t *testing.T) {
		var fetched int
		_, err := queries.FetchIncremental(context.Background(), 2, 0,
			func(_ context.Context, _ int) ([]item, error) {
				fetched++
				return page(1, 2), nil
			}, itemID)

		require.NoError(t, err)
		assert.Equal(t, 1, fetched)
	})
}
