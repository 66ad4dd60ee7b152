package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/rentpal/admin-backend/internal/models"
)

// PagedProperties is the pagination envelope for the active listings view.
type PagedProperties struct {
	Properties  []models.Property `json:"properties"`
	TotalCount  int64             `json:"totalCount"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// MergedUser is a user record with its profile flattened in. Profile-derived
// fields are always present and string-typed; a missing profile yields empty
// strings, never null.
type MergedUser struct {
	ID             uuid.UUID `json:"_id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	Role           int       `json:"role"`
	FirstName      string    `json:"first_name"`
	MiddleName     string    `json:"middle_name"`
	PhoneNumber    string    `json:"phone_number"`
	Address        string    `json:"address"`
	ProfilePicture string    `json:"profile_picture"`
}

// PendingProperty is a listing awaiting verification with owner display
// fields attached.
type PendingProperty struct {
	ID              uuid.UUID       `json:"_id"`
	PropertyName    string          `json:"property_name"`
	Image           []string        `json:"image"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	Location        models.Location `json:"location"`
	Address         string          `json:"address"`
	Category        string          `json:"category"`
	CreatedAt       time.Time       `json:"createdAt"`
	Verification    string          `json:"verification"`
	OwnerName       string          `json:"ownerName"`
	OwnerProfilePic string          `json:"ownerProfilePic"`
}

// PendingProfile is a profile awaiting verification merged with its user.
// Role is `any` because the legacy contract emits "" when the user row is
// missing.
type PendingProfile struct {
	ID           uuid.UUID `json:"_id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	Role         any       `json:"role"`
	FirstName    string    `json:"first_name"`
	MiddleName   string    `json:"middle_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	IDImage      string    `json:"id_image"`
	Verification string    `json:"verification"`
}

// RentedBooking is a booking row with property image and usernames attached.
// The outer fields shadow nothing on the embedded booking.
type RentedBooking struct {
	models.Booking
	PropertyImage  string `json:"property_image"`
	TenantUsername string `json:"tenant_username"`
	OwnerUsername  string `json:"owner_username"`
}

// TxUser mirrors the populated user reference on a transaction row.
type TxUser struct {
	ID       uuid.UUID `json:"_id"`
	UserName string    `json:"user_name"`
}

// TransactionView replaces the raw user_id with the populated user object;
// the outer field wins over the embedded transaction's user_id key.
type TransactionView struct {
	models.Transaction
	User TxUser `json:"user_id"`
}

// DisputeProperty is the joined property summary on a dispute, null when the
// referenced booking or its property no longer resolves.
type DisputeProperty struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type DisputeView struct {
	models.Dispute
	Property *DisputeProperty `json:"property"`
}

// DayBucket is one weekday of the transactions chart. Buckets run
// Sunday-first and all seven are always present.
type DayBucket struct {
	Day         string  `json:"day"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

// BookingDayBucket is one weekday of the bookings chart.
type BookingDayBucket struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// CountResponse is the `{count: n}` polling payload.
type CountResponse struct {
	Count int64 `json:"count"`
}

// BalanceResponse is the account balance lookup payload.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// TermsRequest carries the editable fields of a terms document.
type TermsRequest struct {
	Content string `json:"content"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
