package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rentora/rentora/internal/client/models"
)

// Reservations lists the signed-in user's bookings.
func (a *App) Reservations(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	reservations, err := a.api.Reservations(ctx)
	if err != nil {
		printlnFn("Failed to load reservations:", err.Error())
		return err
	}

	if len(reservations) == 0 {
		printlnFn("No reservations.")
		return nil
	}

	for _, r := range reservations {
		vehicle := ""
		if r.Vehicle != nil {
			vehicle = fmt.Sprintf(" %s %s", r.Vehicle.Brand, r.Vehicle.Model)
		}
		printlnFn(fmt.Sprintf("#%d %s%s %s -> %s, %.2f total [%s]",
			r.ID, r.ReservationCode, vehicle, r.StartDate, r.EndDate, r.TotalAmount, r.Status))
	}
	return nil
}

// Reserve books a vehicle for a date range.
func (a *App) Reserve(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	vehicleID, err := a.promptID("Vehicle id")
	if err != nil {
		return err
	}
	startDate, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	endDate, err := getSimpleText(a.reader, "End date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	pickup, err := getSimpleText(a.reader, "Pickup location", os.Stdout)
	if err != nil {
		return err
	}
	ret, err := getSimpleText(a.reader, "Return location", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateReservationRequest{
		VehicleID:      vehicleID,
		StartDate:      startDate,
		EndDate:        endDate,
		PickupLocation: pickup,
		ReturnLocation: ret,
	}
	reservation, err := a.api.CreateReservation(ctx, req)
	if err != nil {
		printlnFn("Reservation failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Reserved. Code %s, %.2f total.", reservation.ReservationCode, reservation.TotalAmount))
	return nil
}

// CancelReservation cancels one of the user's bookings.
func (a *App) CancelReservation(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	id, err := a.promptID("Reservation id")
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Reason (optional)", os.Stdout)
	if err != nil {
		return err
	}

	reservation, err := a.api.CancelReservation(ctx, id, reason)
	if err != nil {
		printlnFn("Cancellation failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Reservation %s is now %s.", reservation.ReservationCode, reservation.Status))
	return nil
}

func (a *App) promptID(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		printlnFn("Not a number:", text)
		return 0, err
	}
	return id, nil
}
