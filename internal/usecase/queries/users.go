package queries

import (
	"context"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/paging"
)

// Users screen: index strategy. One batch of up to 100 is fetched newest
// first, then sliced into 10-row display pages entirely on our side.
const (
	userBatchLimit = 100
	usersPerPage   = 10
)

type UserReadStore interface {
	List(ctx context.Context, q upstream.ListQuery) ([]upstream.User, int, error)
}

type UserListPage struct {
	Items   []UserRow      `json:"items"`
	Total   int            `json:"total"`
	Control paging.Control `json:"control"`
}

type UserQueries interface {
	ListPage(ctx context.Context, page int) (*UserListPage, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) ListPage(ctx context.Context, page int) (*UserListPage, error) {
	users, total, err := q.store.List(ctx, upstream.ListQuery{
		Page:    1,
		Limit:   userBatchLimit,
		SortDir: "desc",
	})
	if err != nil {
		return nil, err
	}

	totalPages := paging.PageCount(len(users), usersPerPage)
	page = paging.Clamp(page, totalPages)
	start, end := paging.SliceBounds(page, usersPerPage, len(users))

	rows := make([]UserRow, 0, end-start)
	for _, u := range users[start:end] {
		rows = append(rows, NewUserRow(u))
	}

	return &UserListPage{
		Items:   rows,
		Total:   total,
		Control: paging.NewControl(page, totalPages),
	}, nil
}
