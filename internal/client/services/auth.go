// Package services contains the client's application services.
// This file defines the authentication service: login, registration,
// logout and restoring a session from a stored token.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/routes"
	"github.com/dmitrijs2005/shopkeeper/internal/client/session"
	"github.com/dmitrijs2005/shopkeeper/internal/client/tokenstore"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// ErrRequestInFlight is returned when a login or registration is submitted
// while another one has not finished.
var ErrRequestInFlight = errors.New("a request is already in flight")

// Notification texts.
const (
	TitleFormErrors = "Please fix the errors in form"

	TitleLoginSuccess = "Logged In Successfully"
	TitleLoginFailed  = "Login Failed"
	TextLoginFailed   = "Please check your username and password to try again"

	TitleRegistrationSuccess = "Registration Successful"
	TextRegistrationSuccess  = "You have registered successfully"
	TitleRegistrationFailed  = "Registration Failed"
	TextRegistrationFailed   = "Please check your details and try again"

	TitleLoggedOut    = "You are logged out from the app"
	TitleLogoutFailed = "Logout Failed"
	TextLogoutFailed  = "Please try again"
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(title, text string)
}

// Navigator switches the current page.
type Navigator interface {
	Navigate(to routes.Route) error
}

// Validator checks forms before they are submitted.
type Validator interface {
	Login(c models.Credentials) error
	Registration(u *models.User) error
}

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login: validate, authenticate, then store token and cached user.
//   - Register: validate and create an account; never touches the session.
//   - Logout: clear the cached user, the identity and the token.
//   - Restore: rebuild the cached user from a stored token.
//   - Pending: whether a login or registration is in flight.
//
// Failures are reported to the user through the Notifier and also returned.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) error
	Register(ctx context.Context, user *models.User) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	Ping(ctx context.Context) error
	Pending() bool
}

type authService struct {
	client    client.Client
	tokens    tokenstore.Store
	session   *session.Session
	validator Validator
	nav       Navigator
	notifier  Notifier
	log       logging.Logger

	inFlight atomic.Bool
}

// NewAuthService wires an AuthService. All collaborators are required.
func NewAuthService(
	c client.Client,
	tokens tokenstore.Store,
	sess *session.Session,
	v Validator,
	nav Navigator,
	notifier Notifier,
	log logging.Logger,
) AuthService {
	return &authService{
		client:    c,
		tokens:    tokens,
		session:   sess,
		validator: v,
		nav:       nav,
		notifier:  notifier,
		log:       log,
	}
}

func (a *authService) Pending() bool {
	return a.inFlight.Load()
}

func (a *authService) begin() error {
	if !a.inFlight.CompareAndSwap(false, true) {
		return ErrRequestInFlight
	}
	return nil
}

func (a *authService) end() {
	a.inFlight.Store(false)
}

// Login authenticates credentials. On any failure no store is touched.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) error {
	if err := a.validator.Login(credentials); err != nil {
		a.notifier.Notify(TitleFormErrors, "")
		return err
	}

	if err := a.begin(); err != nil {
		return err
	}
	defer a.end()

	resp, err := a.client.Login(ctx, credentials)
	if err == nil {
		switch {
		case resp == nil || resp.User == nil:
			err = client.ErrEmptyResponse
		case resp.AccessToken == "":
			err = client.ErrMissingToken
		}
	}
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", credentials.Email, "error", err)
		a.notifier.Notify(TitleLoginFailed, TextLoginFailed)
		return fmt.Errorf("login: %w", err)
	}

	if err := a.tokens.SetToken(ctx, resp.AccessToken); err != nil {
		a.log.Error(ctx, "saving session token failed", "error", err)
		a.notifier.Notify(TitleLoginFailed, TextLoginFailed)
		return fmt.Errorf("login: %w", err)
	}
	a.session.Cache.Set(session.UserKey, resp.User.Sanitized())

	a.log.Info(ctx, "logged in", "email", resp.User.Email)
	a.notifier.Notify(TitleLoginSuccess, "")
	return a.nav.Navigate(routes.User)
}

// Register creates an account. A success response without a user record is
// treated as a failure.
func (a *authService) Register(ctx context.Context, user *models.User) error {
	if err := a.validator.Registration(user); err != nil {
		a.notifier.Notify(TitleFormErrors, "")
		return err
	}

	if err := a.begin(); err != nil {
		return err
	}
	defer a.end()

	created, err := a.client.Register(ctx, user)
	if err == nil && created == nil {
		err = client.ErrEmptyResponse
	}
	if err != nil {
		a.log.Warn(ctx, "registration failed", "email", user.Email, "error", err)
		a.notifier.Notify(TitleRegistrationFailed, TextRegistrationFailed)
		return fmt.Errorf("register: %w", err)
	}

	a.log.Info(ctx, "registered", "email", created.Email)
	a.notifier.Notify(TitleRegistrationSuccess, TextRegistrationSuccess)
	return a.nav.Navigate(routes.Login)
}

// Logout runs its steps in order and stops at the first failure. Steps
// already done stay done, and the user is not sent away so they can retry.
func (a *authService) Logout(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("logout: %v", r)
		}
		if err != nil {
			a.log.Error(ctx, "logout failed", "error", err)
			a.notifier.Notify(TitleLogoutFailed, TextLogoutFailed)
		}
	}()

	a.notifier.Notify(TitleLoggedOut, "")
	a.session.Cache.Set(session.UserKey, nil)
	a.session.Identity.SetLoggedInUser(nil)
	if err := a.tokens.ClearToken(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := a.nav.Navigate(routes.Login); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.log.Info(ctx, "logged out")
	return nil
}

// Restore looks for a stored token and, if the server still accepts it,
// caches the user it belongs to. A rejected token is removed. When the
// server cannot be reached the token is kept for the next start.
func (a *authService) Restore(ctx context.Context) error {
	token, ok, err := a.tokens.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if !ok {
		return nil
	}

	user, err := a.client.Profile(ctx, token)
	switch {
	case err == nil:
		a.session.Cache.Set(session.UserKey, user.Sanitized())
		a.log.Info(ctx, "session restored", "email", user.Email)
		return nil
	case errors.Is(err, client.ErrUnauthorized):
		a.log.Info(ctx, "stored session token rejected, clearing it")
		if cerr := a.tokens.ClearToken(ctx); cerr != nil {
			return fmt.Errorf("restore: %w", cerr)
		}
		return nil
	default:
		a.log.Warn(ctx, "could not restore session", "error", err)
		return fmt.Errorf("restore: %w", err)
	}
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
