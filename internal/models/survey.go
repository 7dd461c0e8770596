package models

// QrSurveyResponse is one submission of the public QR-code survey. The
// scanned recruiter's code ties the response back to its owner.
type QrSurveyResponse struct {
	BaseModel
	RecruiterQRCode string `gorm:"not null;index"`
	Name            string `gorm:"not null"`
	Email           string
	Phone           string
	Age             *int
	Feedback        string
	Rating          *int
	ScanLocation    string
	IPAddress       string
}
