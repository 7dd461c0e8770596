package repositories

import (
	"errors"

	"gorm.io/gorm"

	"recruittrack/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrStationNotFound = errors.New("station not found")
)

type UserRepository interface {
	CreateUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
	FindUserByQRCode(qrCode string) (*models.User, error)
	UpdateUser(user *models.User) error
	UpdateUserRole(id string, role models.UserRole) error

	FindStationRecruiterIDs(stationID string) ([]string, error)
	FindStationCommanders(stationID string) ([]models.User, error)
	FindOrCreateStation(name, zipCode string) (*models.Station, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) CreateUser(user *models.User) error {
	var count int64
	r.db.Model(&models.User{}).
		Where("email = ? OR username = ?", user.Email, user.Username).
		Count(&count)
	if count > 0 {
		return ErrUserExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Station").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindUserByQRCode(qrCode string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "qr_code = ?", qrCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateUserRole(id string, role models.UserRole) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindStationRecruiterIDs lists every user ID attached to the station,
// commanders included.
func (r *UserRepositoryImpl) FindStationRecruiterIDs(stationID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.User{}).
		Where("station_id = ?", stationID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *UserRepositoryImpl) FindStationCommanders(stationID string) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("station_id = ? AND role = ?", stationID, models.UserRoleStationCommander).
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindOrCreateStation(name, zipCode string) (*models.Station, error) {
	var station models.Station
	err := r.db.First(&station, "name = ?", name).Error
	if err == nil {
		return &station, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	station = models.Station{Name: name, ZipCode: zipCode}
	if err := r.db.Create(&station).Error; err != nil {
		return nil, err
	}
	return &station, nil
}
