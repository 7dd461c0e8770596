package dto

import (
	"time"

	"recruittrack/internal/models"
)

// ---------------- Requests ----------------

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required,max=100"`
	Rank     string `json:"rank" validate:"omitempty,max=30"`
	Unit     string `json:"unit" validate:"omitempty,max=100"`
	ZipCode  string `json:"zipCode" validate:"omitempty,max=10"`
	Station  string `json:"station" validate:"omitempty,max=100"`

	// Asking for station_commander at registration files a promotion
	// request instead of granting the role outright.
	Role models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type StationCommanderRequestInput struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type ReviewRequestInput struct {
	Approve bool `json:"approve"`
}

// ---------------- Responses ----------------

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Rank      string          `json:"rank,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	ZipCode   string          `json:"zipCode,omitempty"`
	QRCode    string          `json:"qrCode"`
	Role      models.UserRole `json:"role"`
	StationID *string         `json:"stationId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type RequestResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	Username  string               `json:"username"`
	FullName  string               `json:"fullName"`
	Reason    string               `json:"reason,omitempty"`
	Status    models.RequestStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}
