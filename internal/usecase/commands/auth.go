package commands

import (
	"context"

	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/pkg/session"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrSessionIssue         = errs.New("session issue failed")
)

type AuthPort interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type LoginResult struct {
	Email        string
	SessionToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	gateway  AuthPort
	sessions *session.Service
}

func NewAuthCommands(gateway AuthPort, sessions *session.Service) AuthCommands {
	return &authCommandsImpl{
		gateway:  gateway,
		sessions: sessions,
	}
}

// Login exchanges the credentials for an upstream bearer token and seals it
// into a session token. Rejections and 401s collapse into one credentials
// error so callers cannot probe which accounts exist.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	upstreamToken, err := a.gateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		if upstream.IsUnauthorized(err) || upstream.IsKind(err, upstream.KindRejected) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	sessionToken, err := a.sessions.Issue(req.Email, upstreamToken)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionIssue)
	}

	return &LoginResult{
		Email:        req.Email,
		SessionToken: sessionToken,
	}, nil
}
