package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/havenlocal/haven/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details, runs the captcha gate, and creates a
// new identity. On success the new account is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	secret, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !verifyHuman(a, ctx) {
		printlnFn("Verification not completed.")
		return nil
	}

	profile, err := a.directory.Register(ctx, email, secret, displayName)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			printlnFn("An account with this email already exists.")
			return nil
		}
		a.logger.Error(ctx, "registration failed", "error", err)
		return err
	}

	a.session = &profile
	a.logger.Info(ctx, "account registered", "email", profile.Email)
	printlnFn(fmt.Sprintf("Welcome, %s!", profile.DisplayName))
	return nil
}

// Login prompts for credentials, runs the captcha gate, and opens a session.
// An invalid email and an invalid password produce the same message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	secret, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !verifyHuman(a, ctx) {
		printlnFn("Verification not completed.")
		return nil
	}

	profile, err := a.directory.Login(ctx, email, secret)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
			return nil
		}
		a.logger.Error(ctx, "login failed", "error", err)
		return err
	}

	a.session = &profile
	a.logger.Info(ctx, "session opened", "email", profile.Email)
	printlnFn(fmt.Sprintf("Welcome back, %s!", profile.DisplayName))
	return nil
}

// Logout clears the persisted session pointer. Logging out while already
// logged out is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.directory.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current session, if any.
func (a *App) Whoami(ctx context.Context) error {
	current, ok, err := a.directory.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>, registered %s",
		current.DisplayName, current.Email, current.CreatedAt.Format("Jan 2, 2006")))
	return nil
}
