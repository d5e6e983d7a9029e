package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/rentora/rentora/internal/client/models"
)

// The rental endpoints are thin wrappers: send method+path+body, return the
// parsed body or the normalized error.

func applyVehicleFilters(req *resty.Request, f *models.VehicleFilters) {
	if f == nil {
		return
	}
	if f.Category != "" {
		req.SetQueryParam("category", f.Category)
	}
	if f.MinPrice > 0 {
		req.SetQueryParam("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		req.SetQueryParam("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Transmission != "" {
		req.SetQueryParam("transmission", f.Transmission)
	}
	if f.FuelType != "" {
		req.SetQueryParam("fuelType", f.FuelType)
	}
	if f.MinSeats > 0 {
		req.SetQueryParam("minSeats", strconv.Itoa(f.MinSeats))
	}
	if f.SortBy != "" {
		req.SetQueryParam("sortBy", f.SortBy)
	}
	if f.SortOrder != "" {
		req.SetQueryParam("sortOrder", f.SortOrder)
	}
}

func (r *REST) Vehicles(ctx context.Context, filters *models.VehicleFilters) ([]models.Vehicle, error) {
	var out []models.Vehicle
	req := r.http.R().SetContext(ctx).SetResult(&out)
	applyVehicleFilters(req, filters)
	resp, err := req.Get("/vehicles")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) Vehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	out := &models.Vehicle{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(out).
		Get(fmt.Sprintf("/vehicles/%d", id))
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) AvailableVehicles(ctx context.Context, startDate, endDate string) ([]models.Vehicle, error) {
	var out []models.Vehicle
	resp, err := r.http.R().
		SetContext(ctx).
		SetQueryParam("startDate", startDate).
		SetQueryParam("endDate", endDate).
		SetResult(&out).
		Get("/vehicles/available")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) Reservations(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/reservations")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) Reservation(ctx context.Context, id int64) (*models.Reservation, error) {
	out := &models.Reservation{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(out).
		Get(fmt.Sprintf("/reservations/%d", id))
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) CreateReservation(ctx context.Context, req models.CreateReservationRequest) (*models.Reservation, error) {
	out := &models.Reservation{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(out).
		Post("/reservations")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) UpdateReservation(ctx context.Context, id int64, req models.CreateReservationRequest) (*models.Reservation, error) {
	out := &models.Reservation{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(out).
		Put(fmt.Sprintf("/reservations/%d", id))
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) CancelReservation(ctx context.Context, id int64, reason string) (*models.Reservation, error) {
	out := &models.Reservation{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"reason": reason}).
		SetResult(out).
		Put(fmt.Sprintf("/reservations/%d/cancel", id))
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) ConfirmReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	out := &models.Reservation{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(out).
		Put(fmt.Sprintf("/reservations/%d/confirm", id))
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) CreatePaymentIntent(ctx context.Context, req models.PaymentRequest) (map[string]any, error) {
	out := map[string]any{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/payments/create-payment-intent")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Payment, error) {
	out := &models.Payment{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetQueryParam("paymentIntentId", paymentIntentID).
		SetResult(out).
		Post("/payments/confirm")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) Payments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/payments")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
