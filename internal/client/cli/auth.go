package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/routes"
	"github.com/dmitrijs2005/shopkeeper/internal/client/services"
	"github.com/dmitrijs2005/shopkeeper/internal/client/validation"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
)

// Interactive input helpers are indirections so tests can swap them.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getInt        = GetInt
	getChoice     = GetChoice
	getConfirm    = GetConfirm
)

// inputError is an answer that could not be read or parsed. Nothing is
// submitted when one occurs.
type inputError struct {
	field string
	err   error
}

func (e *inputError) Error() string { return e.field + ": " + e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

// Login opens the login form, prompts for credentials and submits them.
// Outcome messages are printed by the auth service; field and input errors
// are printed here next to their field names.
func (a *App) Login(ctx context.Context) error {
	if err := a.openForm(routes.Login); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.inputFailed("email", err)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return a.inputFailed("password", err)
	}
	defer common.WipeByteArray(password)

	err = a.authService.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	a.printFieldErrors(err)
	return err
}

// Register opens the registration form and walks the user through every
// field before submitting it.
func (a *App) Register(ctx context.Context) error {
	if err := a.openForm(routes.Register); err != nil {
		return err
	}

	user, err := a.readRegistration()
	if err != nil {
		var ie *inputError
		if errors.As(err, &ie) {
			return a.inputFailed(ie.field, ie.err)
		}
		return err
	}

	err = a.authService.Register(ctx, user)
	a.printFieldErrors(err)
	return err
}

func (a *App) readRegistration() (*models.User, error) {
	var (
		u   models.User
		err error
	)

	if u.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return nil, &inputError{"name", err}
	}
	if u.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return nil, &inputError{"email", err}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return nil, &inputError{"password", err}
	}
	u.Password = string(password)
	common.WipeByteArray(password)

	if u.Age, err = getInt(a.reader, "Enter age", a.out); err != nil {
		return nil, &inputError{"age", err}
	}

	gender, err := getChoice(a.reader, "Enter gender", []string{string(models.GenderFemale), string(models.GenderMale)}, a.out)
	if err != nil {
		return nil, &inputError{"gender", err}
	}
	u.Gender = models.Gender(gender)

	accountType, err := getChoice(a.reader, "Enter account type", []string{string(models.AccountTypeBuyer), string(models.AccountTypeSeller)}, a.out)
	if err != nil {
		return nil, &inputError{"accountType", err}
	}
	u.AccountType = models.AccountType(accountType)

	if u.PhoneNumber, err = getSimpleText(a.reader, "Enter phone number (e.g. +14155552671)", a.out); err != nil {
		return nil, &inputError{"phoneNumber", err}
	}
	if u.TermsAndConditions, err = getConfirm(a.reader, "Do you accept the terms and conditions?", a.out); err != nil {
		return nil, &inputError{"termsAndConditions", err}
	}

	return &u, nil
}

// inputFailed tells the user which answer was rejected and aborts the form.
func (a *App) inputFailed(field string, err error) error {
	a.notifier.Notify(services.TitleFormErrors, "")
	fmt.Fprintf(a.out, "  %s: %v\n", field, err)
	return &inputError{field: field, err: err}
}

// Logout ends the session. The auth service prints the outcome.
func (a *App) Logout(ctx context.Context) error {
	return a.authService.Logout(ctx)
}

// Home and User navigate to their pages.
func (a *App) Home(ctx context.Context) error {
	return a.Navigate(routes.Home)
}

func (a *App) User(ctx context.Context) error {
	return a.Navigate(routes.User)
}

func (a *App) printFieldErrors(err error) {
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		return
	}
	for _, field := range fe.Fields() {
		fmt.Fprintf(a.out, "  %s: %s\n", field, fe[field])
	}
}
