package upstream

import (
	"context"
)

type AuthGateway struct {
	c *Client
}

func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	Authorization struct {
		Token string `json:"token"`
	} `json:"authorization"`
}

// Login exchanges admin credentials for an upstream bearer token. The call is
// always unauthenticated; any non-2xx comes back as a gateway error.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (string, error) {
	var data loginData
	err := g.c.postJSON(ctx, "/admin/auth/login", loginRequest{Email: email, Password: password}, &data)
	if err != nil {
		return "", err
	}
	if data.Authorization.Token == "" {
		return "", wrapGatewayErr(g.c.logger, KindDecode, 0, "login response carried no token", nil)
	}
	return data.Authorization.Token, nil
}
