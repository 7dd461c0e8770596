package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruittrack/internal/models"
)

var ErrMOSNotFound = errors.New("MOS not found")

type MOSRepository interface {
	FindAll() ([]models.ArmyMOS, error)
	FindByCode(code string) (*models.ArmyMOS, error)
	FindByCategory(category string) ([]models.ArmyMOS, error)
	// Seed inserts missing catalog entries. Existing codes are left alone.
	Seed(catalog []models.ArmyMOS) error
}

type MOSRepositoryImpl struct {
	db *gorm.DB
}

func NewMOSRepository(db *gorm.DB) MOSRepository {
	return &MOSRepositoryImpl{db: db}
}

func (r *MOSRepositoryImpl) FindAll() ([]models.ArmyMOS, error) {
	var mos []models.ArmyMOS
	err := r.db.Order("code ASC").Find(&mos).Error
	return mos, err
}

func (r *MOSRepositoryImpl) FindByCode(code string) (*models.ArmyMOS, error) {
	var mos models.ArmyMOS
	err := r.db.First(&mos, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMOSNotFound
		}
		return nil, err
	}
	return &mos, nil
}

func (r *MOSRepositoryImpl) FindByCategory(category string) ([]models.ArmyMOS, error) {
	var mos []models.ArmyMOS
	err := r.db.Where("category = ?", category).Order("code ASC").Find(&mos).Error
	return mos, err
}

func (r *MOSRepositoryImpl) Seed(catalog []models.ArmyMOS) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range catalog {
			var count int64
			if err := tx.Model(&models.ArmyMOS{}).
				Where("code = ?", catalog[i].Code).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&catalog[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
