//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/pkg/session"
	"tripdesk/internal/usecase/commands"
	"tripdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthGateway struct {
	token     string
	err       error
	gotEmail  string
	gotSecret string
}

func (f *fakeAuthGateway) Login(_ context.Context, email, password string) (string, error) {
	f.gotEmail = email
	f.gotSecret = password
	return f.token, f.err
}

func newSessionService() *session.Service {
	return session.NewService("test-session-secret", time.Hour)
}

func TestAuthCommandsLogin(t *testing.T) {
	req := builder.NewAuthBuilder().BuildDTO()

	t.Run("success seals the upstream token into a session", func(t *testing.T) {
		gateway := &fakeAuthGateway{token: "upstream-bearer"}
		sessions := newSessionService()
		cmd := commands.NewAuthCommands(gateway, sessions)

		result, err := cmd.Login(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, req.Email, gateway.gotEmail)
		assert.Equal(t, req.Email, result.Email)

		claims, err := sessions.Validate(result.SessionToken)
		require.NoError(t, err)
		assert.Equal(t, "upstream-bearer", claims.UpstreamToken)
		assert.Equal(t, req.Email, claims.Email)
	})

	t.Run("upstream 401 collapses into invalid credentials", func(t *testing.T) {
		gateway := &fakeAuthGateway{err: upstream.NewGatewayError(upstream.KindUnauthorized, 401, "unauthorized")}
		cmd := commands.NewAuthCommands(gateway, newSessionService())

		_, err := cmd.Login(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("upstream rejection collapses the same way", func(t *testing.T) {
		gateway := &fakeAuthGateway{err: upstream.NewGatewayError(upstream.KindRejected, 422, "rejected")}
		cmd := commands.NewAuthCommands(gateway, newSessionService())

		_, err := cmd.Login(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("transport failure is not a credentials problem", func(t *testing.T) {
		gateway := &fakeAuthGateway{err: upstream.NewGatewayError(upstream.KindTransport, 0, "dial timeout")}
		cmd := commands.NewAuthCommands(gateway, newSessionService())

		_, err := cmd.Login(context.Background(), req)
		require.Error(t, err)
		assert.False(t, errs.Is(err, commands.ErrInvalidCredentials))
		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
	})
}
