package upstream

import (
	"context"
)

type UserGateway struct {
	c *Client
}

func NewUserGateway(c *Client) *UserGateway {
	return &UserGateway{c: c}
}

// List returns one page of users plus the server-reported total.
func (g *UserGateway) List(ctx context.Context, q ListQuery) ([]User, int, error) {
	var users []User
	total, err := g.c.get(ctx, "/admin/user/get-list", q.values(), &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

type updateUserProfileRequest struct {
	ID       int  `json:"id"`
	IsActive bool `json:"is_active"`
}

// UpdateStatus flips a user's active flag. The caller only applies the new
// value locally after this returns nil.
func (g *UserGateway) UpdateStatus(ctx context.Context, id int, isActive bool) error {
	return g.c.postJSON(ctx, "/admin/user/update-user-profile", updateUserProfileRequest{ID: id, IsActive: isActive}, nil)
}
