// Package services contains the client's application services. This file
// holds authentication: login, registration, logout and session restore.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/facecam/internal/client/api"
	"github.com/dmitrijs2005/facecam/internal/client/failures"
	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/client/session"
	"github.com/dmitrijs2005/facecam/internal/common"
	"github.com/dmitrijs2005/facecam/internal/logging"
)

var ErrMissingToken = errors.New("service returned no session token")

// AuthService defines authentication operations for the CLI.
//
// Login and Register return a *failures.Failure (match with errors.As) when
// the service refused the credentials; any other error comes from the local
// store.
type AuthService interface {
	Restore(ctx context.Context) (models.Session, bool, error)
	Login(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, username, password string) (models.Session, error)
	Logout(ctx context.Context, s models.Session) error
	// Drop forgets the local session without telling the server. Used when
	// the server has already rejected it.
	Drop(ctx context.Context) error
}

type authService struct {
	client *api.Client
	store  session.Store
	log    logging.Logger
}

func NewAuthService(client *api.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

func (a *authService) Restore(ctx context.Context) (models.Session, bool, error) {
	return a.store.Restore(ctx)
}

func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	return a.authenticate(ctx, api.OpLogin, username, password)
}

func (a *authService) Register(ctx context.Context, username, password string) (models.Session, error) {
	return a.authenticate(ctx, api.OpRegister, username, password)
}

// authenticate trades credentials for a token and persists the new session.
// Nothing is stored unless the service accepted the credentials.
func (a *authService) authenticate(ctx context.Context, op api.Operation, username, password string) (models.Session, error) {
	var resp api.AuthResponse
	res := a.client.Authenticate(ctx, op, username, password, api.JSON(&resp))
	if f := failures.Classify(op, res); f != nil {
		a.log.Warn(ctx, "authentication refused", "op", string(op), "user", username, "status", f.Status, "kind", f.Message())
		return models.Session{}, f
	}
	if resp.SessionToken == "" {
		return models.Session{}, &failures.Failure{Op: op, Kind: failures.KindTransport, Status: res.Status, Err: fmt.Errorf("%w: %w", common.ErrTransport, ErrMissingToken)}
	}

	if err := a.store.Establish(ctx, username, resp.SessionToken); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "op", string(op), "user", username)
	return models.Session{Username: username, Token: resp.SessionToken}, nil
}

// Logout tells the service to end the session and then forgets it locally.
// The local session is cleared even when the service could not be reached.
func (a *authService) Logout(ctx context.Context, s models.Session) error {
	res := a.client.WithSession(s).Do(ctx, api.OpLogout, nil, nil)
	if !res.OK() {
		a.log.Warn(ctx, "logout not confirmed by server", "user", s.Username, "result", res.String())
	}
	return a.Drop(ctx)
}

func (a *authService) Drop(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	return nil
}
