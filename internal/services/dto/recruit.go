package dto

import (
	"time"

	"recruittrack/internal/models"
)

// ---------------- Requests ----------------

// CreateRecruitRequest is the public intake form. RecruiterQRCode ties
// a QR submission back to the scanning recruiter; entries without it
// default to the direct source and stay unassigned.
type CreateRecruitRequest struct {
	FirstName   string    `json:"firstName" validate:"required,max=100"`
	MiddleName  string    `json:"middleName" validate:"omitempty,max=100"`
	LastName    string    `json:"lastName" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"required,max=20"`
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required,recruit-dob"`
	Street      string    `json:"street" validate:"omitempty,max=200"`
	City        string    `json:"city" validate:"omitempty,max=100"`
	State       string    `json:"state" validate:"omitempty,max=50"`
	ZipCode     string    `json:"zipCode" validate:"omitempty,max=10"`

	Education      string `json:"education" validate:"omitempty,max=100"`
	DriversLicense bool   `json:"driversLicense"`
	Interests      string `json:"interests" validate:"omitempty,max=1000"`
	PreferredMOS   string `json:"preferredMos" validate:"omitempty,max=10"`
	Availability   string `json:"availability" validate:"omitempty,is-availability"`

	// Branch and years are only required when the flag is set.
	PriorService       bool   `json:"priorService"`
	PriorServiceBranch string `json:"priorServiceBranch" validate:"required_if=PriorService true,omitempty,max=50"`
	PriorServiceYears  *int   `json:"priorServiceYears" validate:"required_if=PriorService true,omitempty,min=1,max=40"`

	RecruiterQRCode string `json:"recruiterQrCode" validate:"omitempty,max=64"`
	ScanLocation    string `json:"scanLocation" validate:"omitempty,max=200"`
}

// UpdateRecruitRequest carries a partial update; nil fields are left
// untouched. Status changes go through the status endpoint.
type UpdateRecruitRequest struct {
	FirstName          *string    `json:"firstName,omitempty" validate:"omitempty,max=100"`
	MiddleName         *string    `json:"middleName,omitempty" validate:"omitempty,max=100"`
	LastName           *string    `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Email              *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone              *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty" validate:"omitempty,recruit-dob"`
	Street             *string    `json:"street,omitempty" validate:"omitempty,max=200"`
	City               *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	State              *string    `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode            *string    `json:"zipCode,omitempty" validate:"omitempty,max=10"`
	Education          *string    `json:"education,omitempty" validate:"omitempty,max=100"`
	DriversLicense     *bool      `json:"driversLicense,omitempty"`
	PriorService       *bool      `json:"priorService,omitempty"`
	PriorServiceBranch *string    `json:"priorServiceBranch,omitempty" validate:"omitempty,max=50"`
	PriorServiceYears  *int       `json:"priorServiceYears,omitempty" validate:"omitempty,min=1,max=40"`
	Interests          *string    `json:"interests,omitempty" validate:"omitempty,max=1000"`
	PreferredMOS       *string    `json:"preferredMos,omitempty" validate:"omitempty,max=10"`
	Availability       *string    `json:"availability,omitempty" validate:"omitempty,is-availability"`
	GTScore            *int       `json:"gtScore,omitempty" validate:"omitempty,min=0,max=200"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,is-recruit-status"`
}

type AddNoteRequest struct {
	Note string `json:"note" validate:"required,max=5000"`
}

// UpdateShippingRequest sets or clears the shipping block. A non-nil
// ship date requires the recruit to be qualified.
type UpdateShippingRequest struct {
	ShipDate  *time.Time `json:"shipDate"`
	Component *string    `json:"component,omitempty" validate:"omitempty,is-component"`
	ActualMOS *string    `json:"actualMos,omitempty" validate:"omitempty,max=10"`
}

// ---------------- Responses ----------------

// Age is derived from DateOfBirth at render time, never stored.
type RecruitResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	MiddleName  string    `json:"middleName,omitempty"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Age         int       `json:"age"`
	Street      string    `json:"street,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	ZipCode     string    `json:"zipCode,omitempty"`

	Education          string              `json:"education,omitempty"`
	DriversLicense     bool                `json:"driversLicense"`
	PriorService       bool                `json:"priorService"`
	PriorServiceBranch string              `json:"priorServiceBranch,omitempty"`
	PriorServiceYears  *int                `json:"priorServiceYears,omitempty"`
	Interests          string              `json:"interests,omitempty"`
	PreferredMOS       string              `json:"preferredMos,omitempty"`
	Availability       models.Availability `json:"availability,omitempty"`

	Status       models.RecruitStatus `json:"status"`
	StatusLabel  string               `json:"statusLabel"`
	Source       models.RecruitSource `json:"source"`
	ScanLocation string               `json:"scanLocation,omitempty"`
	RecruiterID  *string              `json:"recruiterId,omitempty"`

	GTScore      *int     `json:"gtScore,omitempty"`
	SuggestedMOS []string `json:"suggestedMos,omitempty"`

	ShipDate  *time.Time        `json:"shipDate,omitempty"`
	Component *models.Component `json:"component,omitempty"`
	ActualMOS string            `json:"actualMos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RecruitListResponse struct {
	Recruits []RecruitResponse `json:"recruits"`
	Total    int64             `json:"total"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Seq       int       `json:"seq"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
