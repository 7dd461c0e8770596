package models

import "time"

// SorbLead is a Special Operations Recruiting Battalion prospect. Leads
// live in their own pipeline, separate from the standard recruit intake.
type SorbLead struct {
	BaseModel
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"index"`
	Phone     string

	Rank        string
	CurrentUnit string
	DutyPost    string `gorm:"index"`
	CurrentMOS  string
	TimeInGrade string

	GTScore       *int
	PTScore       *int
	HasAirborne   bool `gorm:"default:false"`
	HasMedical    bool `gorm:"default:false"`
	NoMoralWaiver bool `gorm:"default:false"`
	SocomUnit     bool `gorm:"default:false"`
	InPipeline    bool `gorm:"default:false"`

	Stage         SorbStage  `gorm:"type:varchar(20);not null;default:'prospect';index"`
	ContactedAt   *time.Time
	TargetProgram string
	DeclineReason string
	RecruiterID   *string    `gorm:"index"`

	Recruiter *User `gorm:"foreignKey:RecruiterID"`
}
