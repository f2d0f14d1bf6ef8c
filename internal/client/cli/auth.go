package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Register prompts for name, email and password, validates them and creates
// an account. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if err := models.ValidateName(name); err != nil {
		return a.report(err)
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := models.ValidateEmail(email); err != nil {
		return a.report(err)
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := models.ValidatePassword(password); err != nil {
		return a.report(err)
	}

	a.println("Creating your account...")
	if err := a.store.Register(ctx, name, email, password); err != nil {
		return a.report(err)
	}

	a.println("Welcome aboard,", name+"!")
	return nil
}

// Login prompts for credentials and the "remember me" choice, then signs in.
// A remembered session survives restarts; otherwise it lasts until exit.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := models.ValidateEmail(email); err != nil {
		return a.report(err)
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := models.ValidatePassword(password); err != nil {
		return a.report(err)
	}

	remember, err := getConfirmation(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	a.println("Signing in...")
	if err := a.store.Login(ctx, email, password, remember); err != nil {
		return a.report(err)
	}

	if u, ok := a.store.CurrentUser(); ok {
		a.println("Welcome,", u.Name+"!")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.println("Signing out...")
	a.store.Logout(ctx)
	a.println("Signed out.")
	return nil
}
