package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruittrack/internal/models"
)

var ErrNoteNotFound = errors.New("note not found")

type RecruitNoteRepository interface {
	// AppendNote stores a new note with the next sequence number for the
	// recruit, migrating any legacy free-text notes first.
	AppendNote(recruitID, author, body string) (*models.RecruitNote, error)
	ListNotes(recruitID string) ([]models.RecruitNote, error)
}

type RecruitNoteRepositoryImpl struct {
	db *gorm.DB
}

func NewRecruitNoteRepository(db *gorm.DB) RecruitNoteRepository {
	return &RecruitNoteRepositoryImpl{db: db}
}

func (r *RecruitNoteRepositoryImpl) AppendNote(recruitID, author, body string) (*models.RecruitNote, error) {
	var note *models.RecruitNote

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := migrateLegacyNotes(tx, recruitID); err != nil {
			return err
		}

		var maxSeq int
		if err := tx.Model(&models.RecruitNote{}).
			Where("recruit_id = ?", recruitID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error; err != nil {
			return err
		}

		note = &models.RecruitNote{
			RecruitID: recruitID,
			Seq:       maxSeq + 1,
			Author:    author,
			Body:      body,
		}
		return tx.Create(note).Error
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (r *RecruitNoteRepositoryImpl) ListNotes(recruitID string) ([]models.RecruitNote, error) {
	var notes []models.RecruitNote

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := migrateLegacyNotes(tx, recruitID); err != nil {
			return err
		}
		return tx.Where("recruit_id = ?", recruitID).
			Order("seq ASC").
			Find(&notes).Error
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// migrateLegacyNotes converts a recruit's legacy notes column into
// recruit_notes rows and clears the column, inside the caller's
// transaction. Records written by older clients stored notes either as a
// JSON array or as plain text.
func migrateLegacyNotes(tx *gorm.DB, recruitID string) error {
	var recruit models.Recruit
	err := tx.Select("id", "notes").First(&recruit, "id = ?", recruitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecruitNotFound
		}
		return err
	}
	if recruit.LegacyNotes == "" {
		return nil
	}

	entries := models.ParseLegacyNotes(recruit.LegacyNotes)
	for i := range entries {
		entries[i].RecruitID = recruitID
		if err := tx.Create(&entries[i]).Error; err != nil {
			return err
		}
	}

	return tx.Model(&models.Recruit{}).
		Where("id = ?", recruitID).
		Update("notes", "").Error
}
