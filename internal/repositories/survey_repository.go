package repositories

import (
	"gorm.io/gorm"

	"recruittrack/internal/models"
)

type SurveyRepository interface {
	CreateResponse(response *models.QrSurveyResponse) error
	FindResponsesByQRCode(qrCode string) ([]models.QrSurveyResponse, error)
	FindAllResponses() ([]models.QrSurveyResponse, error)
	CountResponsesByQRCode(qrCode string) (int64, error)
}

type SurveyRepositoryImpl struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &SurveyRepositoryImpl{db: db}
}

func (r *SurveyRepositoryImpl) CreateResponse(response *models.QrSurveyResponse) error {
	return r.db.Create(response).Error
}

func (r *SurveyRepositoryImpl) FindResponsesByQRCode(qrCode string) ([]models.QrSurveyResponse, error) {
	var responses []models.QrSurveyResponse
	err := r.db.Where("recruiter_qr_code = ?", qrCode).
		Order("created_at DESC").
		Find(&responses).Error
	return responses, err
}

func (r *SurveyRepositoryImpl) FindAllResponses() ([]models.QrSurveyResponse, error) {
	var responses []models.QrSurveyResponse
	err := r.db.Order("created_at DESC").Find(&responses).Error
	return responses, err
}

func (r *SurveyRepositoryImpl) CountResponsesByQRCode(qrCode string) (int64, error) {
	var count int64
	err := r.db.Model(&models.QrSurveyResponse{}).
		Where("recruiter_qr_code = ?", qrCode).
		Count(&count).Error
	return count, err
}
