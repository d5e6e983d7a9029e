package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rentora/rentora/internal/client/models"
)

// ShowProfile prints the full profile of the signed-in user.
func (a *App) ShowProfile(_ context.Context) error {
	st := a.session.State()
	if st.User == nil {
		printlnFn("Not logged in.")
		return nil
	}

	u := st.User
	printlnFn("Username:    ", u.Username)
	printlnFn("Name:        ", u.FullName())
	printlnFn("Email:       ", u.Email)
	printlnFn("Phone:       ", u.PhoneNumber)
	printlnFn(fmt.Sprintf("Notifications: email=%t sms=%t push=%t",
		u.EmailNotificationsEnabled, u.SMSNotificationsEnabled, u.PushNotificationsEnabled))
	return nil
}

// EditProfile prompts for each editable field; an empty answer keeps the
// current value. Only changed fields are sent.
func (a *App) EditProfile(ctx context.Context) error {
	st := a.session.State()
	if st.User == nil {
		printlnFn("Not logged in.")
		return nil
	}

	patch := models.UserPatch{}

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s] (empty keeps current)", st.User.FirstName), os.Stdout)
	if err != nil {
		return err
	}
	if firstName != "" {
		patch.FirstName = &firstName
	}

	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s] (empty keeps current)", st.User.LastName), os.Stdout)
	if err != nil {
		return err
	}
	if lastName != "" {
		patch.LastName = &lastName
	}

	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone number [%s] (empty keeps current)", st.User.PhoneNumber), os.Stdout)
	if err != nil {
		return err
	}
	if phone != "" {
		patch.PhoneNumber = &phone
	}

	if patch.FirstName == nil && patch.LastName == nil && patch.PhoneNumber == nil {
		printlnFn("Nothing to update.")
		return nil
	}

	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		printlnFn("Update failed:", a.session.State().LastError)
		return err
	}

	printlnFn("Profile updated.")
	return nil
}

// ChangePassword prompts for the current and new password and swaps them.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(current)

	newPw, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(newPw)

	if err := a.session.ChangePassword(ctx, string(current), string(newPw)); err != nil {
		printlnFn("Password change failed:", a.session.State().LastError)
		return err
	}

	printlnFn("Password changed.")
	return nil
}
