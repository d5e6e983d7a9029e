// Package models defines the data structures exchanged with the rental
// backend: user profiles, vehicles, reservations, payments, and the
// request/response bodies of the REST API.
package models

import "time"

// User is the account profile as returned by the backend. The server copy is
// authoritative: on login, profile update, and session restore the whole
// record replaces whatever is held locally.
type User struct {
	ID                        int64      `json:"id"`
	Username                  string     `json:"username"`
	Email                     string     `json:"email"`
	FirstName                 string     `json:"firstName"`
	LastName                  string     `json:"lastName"`
	PhoneNumber               string     `json:"phoneNumber,omitempty"`
	EmailNotificationsEnabled bool       `json:"emailNotificationsEnabled"`
	SMSNotificationsEnabled   bool       `json:"smsNotificationsEnabled"`
	PushNotificationsEnabled  bool       `json:"pushNotificationsEnabled"`
	DeviceToken               string     `json:"deviceToken,omitempty"`
	IsActive                  bool       `json:"isActive"`
	CreatedAt                 *time.Time `json:"createdAt,omitempty"`
	UpdatedAt                 *time.Time `json:"updatedAt,omitempty"`
}

// FullName joins the first and last name for display.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserPatch carries the subset of profile fields a user may edit. Nil fields
// are omitted from the request so the server only touches what was provided.
type UserPatch struct {
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// NotificationPreferences mirrors the toggles on the profile screen.
type NotificationPreferences struct {
	EmailNotificationsEnabled bool `json:"emailNotificationsEnabled"`
	SMSNotificationsEnabled   bool `json:"smsNotificationsEnabled"`
	PushNotificationsEnabled  bool `json:"pushNotificationsEnabled"`
}
