package dto

import (
	"time"

	"recruittrack/internal/models"
)

// ---------------- Requests ----------------

type CreateSorbLeadRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`

	Rank        string `json:"rank" validate:"omitempty,max=30"`
	CurrentUnit string `json:"currentUnit" validate:"omitempty,max=100"`
	DutyPost    string `json:"dutyPost" validate:"omitempty,max=100"`
	CurrentMOS  string `json:"currentMos" validate:"omitempty,max=10"`
	TimeInGrade string `json:"timeInGrade" validate:"omitempty,max=30"`

	GTScore       *int `json:"gtScore" validate:"omitempty,min=0,max=200"`
	PTScore       *int `json:"ptScore" validate:"omitempty,min=0,max=600"`
	HasAirborne   bool `json:"hasAirborne"`
	HasMedical    bool `json:"hasMedical"`
	NoMoralWaiver bool `json:"noMoralWaiver"`
	SocomUnit     bool `json:"socomUnit"`
	InPipeline    bool `json:"inPipeline"`

	TargetProgram string `json:"targetProgram" validate:"omitempty,max=100"`
}

type UpdateSorbLeadRequest struct {
	FirstName   *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Rank        *string `json:"rank,omitempty" validate:"omitempty,max=30"`
	CurrentUnit *string `json:"currentUnit,omitempty" validate:"omitempty,max=100"`
	DutyPost    *string `json:"dutyPost,omitempty" validate:"omitempty,max=100"`
	CurrentMOS  *string `json:"currentMos,omitempty" validate:"omitempty,max=10"`
	TimeInGrade *string `json:"timeInGrade,omitempty" validate:"omitempty,max=30"`

	GTScore       *int  `json:"gtScore,omitempty" validate:"omitempty,min=0,max=200"`
	PTScore       *int  `json:"ptScore,omitempty" validate:"omitempty,min=0,max=600"`
	HasAirborne   *bool `json:"hasAirborne,omitempty"`
	HasMedical    *bool `json:"hasMedical,omitempty"`
	NoMoralWaiver *bool `json:"noMoralWaiver,omitempty"`
	SocomUnit     *bool `json:"socomUnit,omitempty"`
	InPipeline    *bool `json:"inPipeline,omitempty"`

	TargetProgram *string `json:"targetProgram,omitempty" validate:"omitempty,max=100"`
}

type UpdateSorbStageRequest struct {
	Stage         string `json:"stage" validate:"required,is-sorb-stage"`
	DeclineReason string `json:"declineReason" validate:"omitempty,max=500"`
}

// ---------------- Responses ----------------

type SorbLeadResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`

	Rank        string `json:"rank,omitempty"`
	CurrentUnit string `json:"currentUnit,omitempty"`
	DutyPost    string `json:"dutyPost,omitempty"`
	CurrentMOS  string `json:"currentMos,omitempty"`
	TimeInGrade string `json:"timeInGrade,omitempty"`

	GTScore       *int `json:"gtScore,omitempty"`
	PTScore       *int `json:"ptScore,omitempty"`
	HasAirborne   bool `json:"hasAirborne"`
	HasMedical    bool `json:"hasMedical"`
	NoMoralWaiver bool `json:"noMoralWaiver"`
	SocomUnit     bool `json:"socomUnit"`
	InPipeline    bool `json:"inPipeline"`

	Stage          models.SorbStage `json:"stage"`
	TargetProgram  string           `json:"targetProgram,omitempty"`
	DeclineReason  string           `json:"declineReason,omitempty"`
	ReadinessScore int              `json:"readinessScore"`
	ContactedAt    *time.Time       `json:"contactedAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type SorbLeadListResponse struct {
	Leads []SorbLeadResponse `json:"leads"`
	Total int64              `json:"total"`
}

// SorbAnalytics is the stage funnel; every stage appears, zero or not,
// in fixed funnel order.
type SorbAnalytics struct {
	TotalLeads  int64        `json:"totalLeads"`
	StageFunnel []StageCount `json:"stageFunnel"`
}

// Percent is the stage's share of all counted leads, rounded to the
// nearest whole point. Zero when there are no leads.
type StageCount struct {
	Stage   models.SorbStage `json:"stage"`
	Count   int64            `json:"count"`
	Percent int              `json:"percent"`
}

type SorbPipelineAnalytics struct {
	Total             int64        `json:"total"`
	AvgGTScore        float64      `json:"avgGtScore"`
	GTQualified       int64        `json:"gtQualified"`     // GT >= 105
	GTHighlyQualified int64        `json:"gtHighQualified"` // GT >= 110
	InPipeline        int64        `json:"inPipeline"`
	StageFunnel       []StageCount `json:"stageFunnel"`
	TopPosts          []PostCount  `json:"topPosts"`
}

type PostCount struct {
	DutyPost string `json:"dutyPost"`
	Count    int64  `json:"count"`
}
