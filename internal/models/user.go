package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FullName     string   `gorm:"not null"`
	Rank         string
	Unit         string
	ZipCode      string
	QRCode       string   `gorm:"uniqueIndex"`
	Role         UserRole `gorm:"type:varchar(30);not null;default:'recruiter'"`
	StationID    *string  `gorm:"index"`

	// Relations
	Station  *Station  `gorm:"foreignKey:StationID"`
	Recruits []Recruit `gorm:"foreignKey:RecruiterID"`
}

type Station struct {
	BaseModel
	Name    string `gorm:"uniqueIndex;not null"`
	ZipCode string

	Recruiters []User `gorm:"foreignKey:StationID"`
}

// StationCommanderRequest tracks a recruiter asking for promotion to
// station commander. Approval flips the requester's role.
type StationCommanderRequest struct {
	BaseModel
	UserID     string        `gorm:"not null;index"`
	StationID  *string
	Reason     string
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	ReviewedBy *string

	User *User `gorm:"foreignKey:UserID"`
}
