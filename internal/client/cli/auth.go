package cli

import (
	"context"
	"fmt"
)

// Signup prompts for a name, email and password and creates the account.
// The outcome is reported by the session's notifications.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
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

	if _, err := a.stores.Session.Signup(ctx, name, email, password); err != nil {
		return err
	}
	return nil
}

// Login prompts for credentials and activates the matching identity.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if _, err := a.stores.Session.Login(ctx, email, password); err != nil {
		return err
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	return a.stores.Session.Logout(ctx)
}

func (a *App) WhoAmI(ctx context.Context) error {
	ident := a.stores.Session.Current()
	if ident == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", ident.Name, ident.Email)
	return nil
}
