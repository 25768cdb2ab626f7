package cli

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/localauth/internal/client/services"
	"github.com/dmitrijs2005/localauth/internal/common"
)

var errBusy = errors.New("operation in progress")

// getSimpleText and getPassword point at the interactive helpers and are
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login asks for email and password and logs in. Inline hints for the
// fields are printed before submitting; the service has the final say.
func (a *App) Login(ctx context.Context) error {
	return a.withBusy(func() error {
		email, err := getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
		a.hint(services.CheckEmail(email))

		password, err := getPassword(a.reader, a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)
		a.hint(services.CheckPassword(string(password)))

		u, err := a.authService.Login(ctx, email, string(password))
		if err != nil {
			a.notifier.Error("Login Failed", displayMessage(err, "Login failed"))
			return err
		}
		a.notifier.Success("Login Successful", "Welcome back!")
		a.showHome(u)
		return nil
	})
}

// Signup asks for name, email and password and creates the account. The
// new user is logged in straight away.
func (a *App) Signup(ctx context.Context) error {
	return a.withBusy(func() error {
		name, err := getSimpleText(a.reader, "Enter full name", a.out)
		if err != nil {
			return err
		}

		email, err := getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}

		password, err := getPassword(a.reader, a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)

		u, err := a.authService.Signup(ctx, name, email, string(password))
		if err != nil {
			a.notifier.Error("Signup Failed", displayMessage(err, "Signup failed"))
			return err
		}
		a.notifier.Success("Account created!", "You have successfully signed up.")
		a.showHome(u)
		return nil
	})
}

// Logout ends the session. A storage failure is reported, but the user is
// logged out either way.
func (a *App) Logout(ctx context.Context) error {
	return a.withBusy(func() error {
		if err := a.authService.Logout(ctx); err != nil {
			a.notifier.Error("Logout failed", displayMessage(err, "Something went wrong"))
			return err
		}
		a.notifier.Success("Logged out", "You have successfully logged out.")
		return nil
	})
}

func (a *App) hint(msg string) {
	if msg != "" {
		fmt.Fprintln(a.out, "  ! "+msg)
	}
}

// displayMessage turns a service error into toast text: the detail part,
// capitalised. fallback is used for an empty message.
func displayMessage(err error, fallback string) string {
	msg := common.Message(err)
	if msg == "" {
		return fallback
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
