package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rentora/rentora/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates through the
// session store. Failures are reported from the recorded session error so the
// user sees the same message a mobile screen would.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.session.Login(ctx, models.LoginRequest{Username: userName, Password: string(password)}); err != nil {
		printlnFn("Login failed:", a.session.State().LastError)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.status()))
	return nil
}

// Register prompts for the new account's details, creates it, and (through
// the session store) signs in right away.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	req := models.RegisterRequest{
		Username:  userName,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(password),
	}
	if err := a.session.Register(ctx, req); err != nil {
		printlnFn("Registration failed:", a.session.State().LastError)
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", a.status()))
	return nil
}

// Logout tears the session down. The session store guarantees the local state
// ends anonymous even when the server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the signed-in user, or a hint when anonymous.
func (a *App) Whoami(_ context.Context) error {
	st := a.session.State()
	if st.User == nil {
		printlnFn("Not logged in. Use 'login' or 'register'.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s (%s)", st.User.FullName(), st.User.Email))
	return nil
}
