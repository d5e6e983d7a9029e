// Package api implements the REST client for the rental backend. Cross-cutting
// concerns are explicit middleware stages: one attaches the stored bearer
// credential to outgoing requests, one wipes the persisted session when the
// server answers 401, and every failure is normalized into a single *Error
// before it leaves the package.
package api

import (
	"context"

	"github.com/rentora/rentora/internal/client/models"
)

// Client enumerates the backend operations used by the application.
type Client interface {
	// Auth.
	Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (*models.LoginResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	UpdateNotificationPreferences(ctx context.Context, prefs models.NotificationPreferences) error
	RegisterPushToken(ctx context.Context, token string) error

	// Vehicles.
	Vehicles(ctx context.Context, filters *models.VehicleFilters) ([]models.Vehicle, error)
	Vehicle(ctx context.Context, id int64) (*models.Vehicle, error)
	AvailableVehicles(ctx context.Context, startDate, endDate string) ([]models.Vehicle, error)

	// Reservations.
	Reservations(ctx context.Context) ([]models.Reservation, error)
	Reservation(ctx context.Context, id int64) (*models.Reservation, error)
	CreateReservation(ctx context.Context, req models.CreateReservationRequest) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, req models.CreateReservationRequest) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id int64, reason string) (*models.Reservation, error)
	ConfirmReservation(ctx context.Context, id int64) (*models.Reservation, error)

	// Payments.
	CreatePaymentIntent(ctx context.Context, req models.PaymentRequest) (map[string]any, error)
	ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Payment, error)
	Payments(ctx context.Context) ([]models.Payment, error)
}
