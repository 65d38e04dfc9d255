package commands

import (
	"context"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"
)

var (
	ErrUserNotFound     = errs.New("user not found")
	ErrStatusUnchanged  = errs.New("user status unchanged")
	ErrUserUpdateFailed = errs.New("user update failed")
)

type UserWritePort interface {
	UpdateStatus(ctx context.Context, id int, isActive bool) error
}

type UserCommands interface {
	SetActive(ctx context.Context, id int, isActive bool) error
}

type userCommandsImpl struct {
	gateway UserWritePort
	reads   queries.UserReadStore
}

func NewUserCommands(gateway UserWritePort, reads queries.UserReadStore) UserCommands {
	return &userCommandsImpl{
		gateway: gateway,
		reads:   reads,
	}
}

// SetActive flips the block state upstream. The desired value must differ
// from the current one, which absorbs double-clicks and stale tabs; nothing
// is assumed about the new state until the mutation is acknowledged.
func (u *userCommandsImpl) SetActive(ctx context.Context, id int, isActive bool) error {
	current, err := u.findUser(ctx, id)
	if err != nil {
		return err
	}
	if current.IsActive == isActive {
		return ErrStatusUnchanged
	}

	if err := u.gateway.UpdateStatus(ctx, id, isActive); err != nil {
		if upstream.IsNotFound(err) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrUserUpdateFailed)
	}
	return nil
}

func (u *userCommandsImpl) findUser(ctx context.Context, id int) (*upstream.User, error) {
	users, _, err := u.reads.List(ctx, upstream.ListQuery{Page: 1, Limit: 100, SortDir: "desc"})
	if err != nil {
		return nil, errs.Mark(err, ErrUserUpdateFailed)
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}
