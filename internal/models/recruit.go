package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Recruit struct {
	BaseModel
	FirstName   string    `gorm:"not null"`
	MiddleName  string
	LastName    string    `gorm:"not null"`
	Email       string    `gorm:"not null;index"`
	Phone       string    `gorm:"not null"`
	DateOfBirth time.Time `gorm:"not null"`
	Street      string
	City        string
	State       string
	ZipCode     string

	Education          string
	DriversLicense     bool         `gorm:"default:false"`
	PriorService       bool         `gorm:"default:false"`
	PriorServiceBranch string
	PriorServiceYears  *int
	Interests          string
	PreferredMOS       string
	Availability       Availability `gorm:"type:varchar(20)"`

	// Deprecated intake fields kept for records submitted by older forms.
	Height         string
	Weight         string
	MedicalHistory string
	CriminalRecord string

	Status       RecruitStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Source       RecruitSource `gorm:"type:varchar(20);not null;default:'direct'"`
	ScanLocation string
	IPAddress    string
	RecruiterID  *string `gorm:"index"`

	GTScore      *int
	SuggestedMOS datatypes.JSON `gorm:"type:jsonb"`

	// Shipping block, populated once a qualified recruit has a ship date.
	ShipDate  *time.Time `gorm:"index"`
	Component *Component `gorm:"type:varchar(20)"`
	ActualMOS string

	// Legacy free-text notes column. New notes land in recruit_notes;
	// this field is migrated lazily on first append or read.
	LegacyNotes string `gorm:"column:notes"`

	Recruiter *User         `gorm:"foreignKey:RecruiterID"`
	Notes     []RecruitNote `gorm:"foreignKey:RecruitID"`
}

// AgeAt reports whole years between dob and on, counting the birthday
// itself as already reached.
func AgeAt(dob, on time.Time) int {
	years := on.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(on) {
		years--
	}
	return years
}

// Age is the recruit's age as of now.
func (r *Recruit) Age(now time.Time) int {
	return AgeAt(r.DateOfBirth, now)
}

// RecruitNote is one entry of a recruit's append-only notes history.
// Seq orders entries within a recruit independently of timestamps.
type RecruitNote struct {
	BaseModel
	RecruitID string `gorm:"not null;uniqueIndex:idx_recruit_notes_recruit_seq,priority:1"`
	Seq       int    `gorm:"not null;uniqueIndex:idx_recruit_notes_recruit_seq,priority:2"`
	Author    string `gorm:"not null"`
	Body      string `gorm:"not null"`
}

// legacyNoteEntry is the shape older clients stored as a JSON array in
// the notes column. Author holds a user id; AuthorName is the display
// name recorded at write time.
type legacyNoteEntry struct {
	Note       string `json:"note"`
	Author     string `json:"author"`
	AuthorName string `json:"authorName"`
	Timestamp  string `json:"timestamp"`
}

// ParseLegacyNotes converts the legacy notes column into note entries.
// A JSON array of entries is split per element, keeping each entry's
// recorded author name and timestamp; anything else becomes a single
// entry with an unknown author. Empty input yields nil.
func ParseLegacyNotes(raw string) []RecruitNote {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var entries []legacyNoteEntry
		if err := json.Unmarshal([]byte(raw), &entries); err == nil {
			notes := make([]RecruitNote, 0, len(entries))
			for i, e := range entries {
				if strings.TrimSpace(e.Note) == "" {
					continue
				}
				author := e.AuthorName
				if author == "" {
					author = "Unknown"
				}
				note := RecruitNote{Seq: i + 1, Author: author, Body: e.Note}
				if at, err := time.Parse(time.RFC3339, e.Timestamp); err == nil {
					note.CreatedAt = at
				}
				notes = append(notes, note)
			}
			if len(notes) > 0 {
				return notes
			}
			return nil
		}
	}
	return []RecruitNote{{Seq: 1, Author: "Unknown", Body: raw}}
}
