package dto

import "time"

type CreateSurveyRequest struct {
	RecruiterQRCode string `json:"recruiterQrCode" validate:"required,max=64"`
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"omitempty,max=20"`
	Age             *int   `json:"age" validate:"omitempty,min=1,max=120"`
	Feedback        string `json:"feedback" validate:"omitempty,max=2000"`
	Rating          *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	ScanLocation    string `json:"scanLocation" validate:"omitempty,max=200"`
}

type SurveyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Age          *int      `json:"age,omitempty"`
	Feedback     string    `json:"feedback,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	ScanLocation string    `json:"scanLocation,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SurveyListResponse struct {
	Responses []SurveyResponse `json:"responses"`
	Total     int              `json:"total"`
}
