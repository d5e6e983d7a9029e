package models

import "time"

// VehicleStatus classifies fleet availability.
type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "AVAILABLE"
	VehicleReserved     VehicleStatus = "RESERVED"
	VehicleRented       VehicleStatus = "RENTED"
	VehicleMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

// Vehicle is a rentable car as listed by the backend.
type Vehicle struct {
	ID           int64         `json:"id"`
	LicensePlate string        `json:"licensePlate"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Color        string        `json:"color"`
	Mileage      int64         `json:"mileage"`
	Status       VehicleStatus `json:"status"`
	DailyRate    float64       `json:"dailyRate"`
	Category     string        `json:"category"`
	Seats        int           `json:"seats"`
	Transmission string        `json:"transmission"`
	FuelType     string        `json:"fuelType"`
	Description  string        `json:"description,omitempty"`
	Images       []string      `json:"images,omitempty"`
}

// ReservationStatus classifies the booking lifecycle.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "PENDING"
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationInProgress ReservationStatus = "IN_PROGRESS"
	ReservationCompleted  ReservationStatus = "COMPLETED"
	ReservationCancelled  ReservationStatus = "CANCELLED"
	ReservationNoShow     ReservationStatus = "NO_SHOW"
)

// Reservation is a booking of a vehicle for a date range.
type Reservation struct {
	ID              int64             `json:"id"`
	ReservationCode string            `json:"reservationCode"`
	User            *User             `json:"user,omitempty"`
	Vehicle         *Vehicle          `json:"vehicle,omitempty"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate"`
	PickupLocation  string            `json:"pickupLocation"`
	ReturnLocation  string            `json:"returnLocation"`
	Status          ReservationStatus `json:"status"`
	DailyRate       float64           `json:"dailyRate"`
	TotalDays       int               `json:"totalDays"`
	TotalAmount     float64           `json:"totalAmount"`
	DepositAmount   float64           `json:"depositAmount,omitempty"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	CreatedAt       *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
}

// PaymentStatus classifies a payment record.
type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "PENDING"
	PaymentCompleted         PaymentStatus = "COMPLETED"
	PaymentFailed            PaymentStatus = "FAILED"
	PaymentRefunded          PaymentStatus = "REFUNDED"
	PaymentPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
)

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentCash         PaymentMethod = "CASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// Payment is a settled or pending charge for a reservation.
type Payment struct {
	ID                    int64         `json:"id"`
	PaymentCode           string        `json:"paymentCode"`
	Reservation           *Reservation  `json:"reservation,omitempty"`
	User                  *User         `json:"user,omitempty"`
	Amount                float64       `json:"amount"`
	Subtotal              float64       `json:"subtotal"`
	TaxAmount             float64       `json:"taxAmount"`
	DiscountAmount        float64       `json:"discountAmount,omitempty"`
	ProcessingFee         float64       `json:"processingFee"`
	Status                PaymentStatus `json:"status"`
	Method                PaymentMethod `json:"paymentMethod"`
	StripePaymentIntentID string        `json:"stripePaymentIntentId,omitempty"`
	PaidAt                *time.Time    `json:"paidAt,omitempty"`
	RefundAmount          float64       `json:"refundAmount,omitempty"`
	CreatedAt             *time.Time    `json:"createdAt,omitempty"`
}
