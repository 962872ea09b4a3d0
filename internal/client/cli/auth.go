package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/facecam/internal/client/failures"
	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates an account.
// A successful registration logs the user in and opens the feed.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, "Registered", a.authService.Register)
}

// Login prompts for credentials and, on success, opens the feed.
//
// A refusal by the service is shown as the login error ("Wrong password",
// "Username does not exist", ...) and is not returned as an error.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, "Logged in", a.authService.Login)
}

type authFunc func(ctx context.Context, username, password string) (models.Session, error)

func (a *App) authenticate(ctx context.Context, done string, fn authFunc) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in, logout first")
		return nil
	}

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	s, err := fn(ctx, userName, string(password))
	if err != nil {
		var f *failures.Failure
		if errors.As(err, &f) {
			a.view.SetLoginError(f.Message())
			fmt.Fprintln(a.out, f.Message())
			return nil
		}
		a.log.Error(ctx, "authentication failed", "user", userName, "error", err)
		return err
	}

	a.view.SetLoginError("")
	a.startSession(s)
	fmt.Fprintf(a.out, "%s as %s\n", done, s.Username)
	return a.Feed(ctx)
}

// Logout ends the session on the server and forgets it locally.
func (a *App) Logout(ctx context.Context) error {
	s, _ := a.current()
	if !s.Valid() {
		return common.ErrNotLoggedIn
	}

	a.endSession()
	if err := a.authService.Logout(ctx, s); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Me prints the logged-in username.
func (a *App) Me(ctx context.Context) error {
	s, _ := a.current()
	if !s.Valid() {
		return common.ErrNotLoggedIn
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", s.Username)
	return nil
}
