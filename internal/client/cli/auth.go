package cli

import (
	"context"
	"os"
	"strings"
)

// getSimpleText, getPassword, getLines and getConfirm are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getLines      = GetLines
	getConfirm    = GetConfirm
)

// Login prompts for contact number and password and authenticates against
// the backend. On success the issued token is persisted and the dashboard
// becomes the active screen. Backend errors are shown inline and the sign-in
// screen stays.
func (a *App) Login(ctx context.Context) error {
	contact, err := getSimpleText(a.reader, "Enter contact number", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(contact) == "" {
		return failValidation("Please enter your contact number")
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	tok, err := a.api.Login(ctx, contact, string(password))
	if err != nil {
		reportErr(err)
		return err
	}

	if err := a.session.Login(ctx, tok); err != nil {
		printlnFn("Could not save session:", err.Error())
		return err
	}

	a.screen = screenDashboard
	if u := a.session.User(); u != nil {
		printfFn("Welcome back, %s!\n", u.Name)
	}
	return nil
}

// Register prompts for name, contact and password and creates an account.
// The backend signs the new user in right away by returning a token.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your full name", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return failValidation("Please enter your full name")
	}

	contact, err := getSimpleText(a.reader, "Enter contact number", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(contact) == "" {
		return failValidation("Please enter your contact number")
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	tok, err := a.api.Register(ctx, name, contact, string(password))
	if err != nil {
		reportErr(err)
		return err
	}

	if err := a.session.Login(ctx, tok); err != nil {
		printlnFn("Could not save session:", err.Error())
		return err
	}

	a.screen = screenDashboard
	printfFn("Account created. Welcome, %s!\n", name)
	return nil
}

// Logout clears the session and returns to the sign-in screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.screen = screenAuth
	a.groups, a.group, a.activity = nil, nil, nil
	printlnFn("Signed out.")
	return nil
}

// Whoami prints the identity derived from the current token.
func (a *App) Whoami() {
	u := a.session.User()
	if u == nil {
		printlnFn("Not signed in.")
		return
	}
	printfFn("%s (contact %s)\n", u.Name, u.Contact)
}
