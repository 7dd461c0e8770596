package dto

import (
	"time"

	"recruittrack/internal/models"
)

// Urgency buckets for upcoming shippers.
const (
	UrgencyHigh   = "high"   // ships within 3 days
	UrgencyMedium = "medium" // ships within 7 days
	UrgencyLow    = "low"
)

type ShipperResponse struct {
	ID            string            `json:"id"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	ShipDate      time.Time         `json:"shipDate"`
	Component     *models.Component `json:"component,omitempty"`
	ActualMOS     string            `json:"actualMos,omitempty"`
	DaysUntil     int               `json:"daysUntil"`
	Urgency       string            `json:"urgency"`
	RecruiterName string            `json:"recruiterName,omitempty"`
	RecruiterRank string            `json:"recruiterRank,omitempty"`
}

type ShipperListResponse struct {
	Shippers []ShipperResponse `json:"shippers"`
	Total    int               `json:"total"`
}

// ShipperCandidate is a qualified recruit awaiting a ship date.
type ShipperCandidate struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	GTScore   *int   `json:"gtScore,omitempty"`
}
