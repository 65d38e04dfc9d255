//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"
	"tripdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users     []upstream.User
	total     int
	err       error
	lastQuery upstream.ListQuery
	calls     int
}

func (f *fakeUserStore) List(_ context.Context, q upstream.ListQuery) ([]upstream.User, int, error) {
	f.lastQuery = q
	f.calls++
	return f.users, f.total, f.err
}

func makeUsers(n int) []upstream.User {
	users := make([]upstream.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, builder.NewUserBuilder().WithID(i).Build())
	}
	return users
}

func TestUserQueriesListPage(t *testing.T) {
	t.Run("one batch is fetched and sliced into display pages", func(t *testing.T) {
		store := &fakeUserStore{users: makeUsers(25), total: 25}
		q := queries.NewUserQueries(store)

		page, err := q.ListPage(context.Background(), 2)
		require.NoError(t, err)

		assert.Equal(t, 1, store.calls, "index strategy fetches exactly once")
		assert.Equal(t, 100, store.lastQuery.Limit)
		assert.Equal(t, 1, store.lastQuery.Page)
		require.Len(t, page.Items, 10)
		assert.Equal(t, 11, page.Items[0].ID, "page 2 starts at the eleventh row")
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 3, page.Control.TotalPages)
		assert.True(t, page.Control.HasPrev)
		assert.True(t, page.Control.HasNext)
	})

	t.Run("last page is short", func(t *testing.T) {
		store := &fakeUserStore{users: makeUsers(25), total: 25}
		q := queries.NewUserQueries(store)

		page, err := q.ListPage(context.Background(), 3)
		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.False(t, page.Control.HasNext)
	})

	t.Run("page past the end clamps instead of emptying", func(t *testing.T) {
		store := &fakeUserStore{users: makeUsers(25), total: 25}
		q := queries.NewUserQueries(store)

		page, err := q.ListPage(context.Background(), 40)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Control.Current)
		assert.Len(t, page.Items, 5)
	})

	t.Run("store failure surfaces untouched", func(t *testing.T) {
		boom := errs.New("upstream down")
		store := &fakeUserStore{err: boom}
		q := queries.NewUserQueries(store)

		_, err := q.ListPage(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, errs.Is(err, boom))
	})
}
