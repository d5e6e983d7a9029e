package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by the login and refresh endpoints. TokenType is
// declared by the server (normally "Bearer"); the token itself is opaque to
// the client.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	User        User   `json:"user"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// ChangePasswordRequest is the body of PUT /auth/change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateReservationRequest is the body of POST /reservations.
type CreateReservationRequest struct {
	VehicleID       int64  `json:"vehicleId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	PickupLocation  string `json:"pickupLocation"`
	ReturnLocation  string `json:"returnLocation"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// PaymentRequest is the body of POST /payments/create-payment-intent.
type PaymentRequest struct {
	ReservationID   int64   `json:"reservationId"`
	UserID          int64   `json:"userId"`
	Amount          float64 `json:"amount"`
	DiscountAmount  float64 `json:"discountAmount,omitempty"`
	PromoCode       string  `json:"promoCode,omitempty"`
	PaymentMethodID string  `json:"paymentMethodId"`
	Currency        string  `json:"currency,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// VehicleFilters narrows GET /vehicles. Zero values mean "no filter" and are
// not sent.
type VehicleFilters struct {
	Category     string
	MinPrice     float64
	MaxPrice     float64
	Transmission string
	FuelType     string
	MinSeats     int
	SortBy       string
	SortOrder    string
}
