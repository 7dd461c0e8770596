package services

import (
	"strings"

	"github.com/google/uuid"

	"recruittrack/internal/auth"
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetMe(userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	requestRepo repositories.RequestRepository
}

func NewAuthService(userRepo repositories.UserRepository, requestRepo repositories.RequestRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, requestRepo: requestRepo}
}

// Register creates a recruiter account. Asking for the station commander
// role does not grant it: the account starts pending and an approval
// request is filed for an admin.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	role := models.UserRoleRecruiter
	wantsCommander := req.Role == models.UserRoleStationCommander
	if wantsCommander {
		role = models.UserRolePendingStationCommander
	} else if req.Role != "" && req.Role != models.UserRoleRecruiter {
		return nil, apperrors.NewBadRequestError("role cannot be assigned at registration")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FullName:     req.FullName,
		Rank:         req.Rank,
		Unit:         req.Unit,
		ZipCode:      req.ZipCode,
		QRCode:       uuid.NewString(),
		Role:         role,
	}

	if req.Station != "" {
		station, err := s.userRepo.FindOrCreateStation(req.Station, req.ZipCode)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.StationID = &station.ID
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if wantsCommander {
		request := &models.StationCommanderRequest{
			UserID:    user.ID,
			StationID: user.StationID,
			Reason:    "requested at registration",
			Status:    models.RequestStatusPending,
		}
		if err := s.requestRepo.CreateRequest(request); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: toUserDTO(user)}, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.FindUserByUsername(username)
	if err != nil {
		// Allow email in the username field.
		user, err = s.userRepo.FindUserByEmail(username)
	}
	if err != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: toUserDTO(user)}, nil
}

func (s *AuthServiceImpl) GetMe(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	u := toUserDTO(user)
	return &u, nil
}

func toUserDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Rank:      user.Rank,
		Unit:      user.Unit,
		ZipCode:   user.ZipCode,
		QRCode:    user.QRCode,
		Role:      user.Role,
		StationID: user.StationID,
		CreatedAt: user.CreatedAt,
	}
}
