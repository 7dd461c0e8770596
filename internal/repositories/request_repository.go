package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruittrack/internal/models"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrRequestPending  = errors.New("a pending request already exists")
)

type RequestRepository interface {
	CreateRequest(request *models.StationCommanderRequest) error
	FindRequestByID(id string) (*models.StationCommanderRequest, error)
	FindPendingRequests() ([]models.StationCommanderRequest, error)
	CountPendingRequests() (int64, error)
	UpdateRequest(request *models.StationCommanderRequest) error
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) CreateRequest(request *models.StationCommanderRequest) error {
	var count int64
	r.db.Model(&models.StationCommanderRequest{}).
		Where("user_id = ? AND status = ?", request.UserID, models.RequestStatusPending).
		Count(&count)
	if count > 0 {
		return ErrRequestPending
	}
	return r.db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindRequestByID(id string) (*models.StationCommanderRequest, error) {
	var request models.StationCommanderRequest
	err := r.db.Preload("User").First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindPendingRequests() ([]models.StationCommanderRequest, error) {
	var requests []models.StationCommanderRequest
	err := r.db.Preload("User").
		Where("status = ?", models.RequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) CountPendingRequests() (int64, error) {
	var count int64
	err := r.db.Model(&models.StationCommanderRequest{}).
		Where("status = ?", models.RequestStatusPending).
		Count(&count).Error
	return count, err
}

func (r *RequestRepositoryImpl) UpdateRequest(request *models.StationCommanderRequest) error {
	return r.db.Save(request).Error
}
