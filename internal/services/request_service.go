package services

import (
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

// RequestService handles the station commander promotion flow: a
// recruiter files a request, an admin approves or denies it.
type RequestService interface {
	SubmitRequest(actorID string, req *dto.StationCommanderRequestInput) (*dto.RequestResponse, error)
	ListPendingRequests() ([]dto.RequestResponse, error)
	PendingCount() (int64, error)
	ReviewRequest(adminID, requestID string, approve bool) (*dto.RequestResponse, error)
}

type RequestServiceImpl struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
}

func NewRequestService(requestRepo repositories.RequestRepository, userRepo repositories.UserRepository) RequestService {
	return &RequestServiceImpl{requestRepo: requestRepo, userRepo: userRepo}
}

func (s *RequestServiceImpl) SubmitRequest(actorID string, req *dto.StationCommanderRequestInput) (*dto.RequestResponse, error) {
	user, err := s.userRepo.FindUserByID(actorID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("unknown user")
	}
	if user.Role == models.UserRoleStationCommander || user.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidOperation("auth", "role already granted")
	}

	request := &models.StationCommanderRequest{
		UserID:    user.ID,
		StationID: user.StationID,
		Reason:    req.Reason,
		Status:    models.RequestStatusPending,
	}
	if err := s.requestRepo.CreateRequest(request); err != nil {
		if apperrors.Is(err, repositories.ErrRequestPending) {
			return nil, apperrors.ErrConflict(err, "auth", "a pending request already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role == models.UserRoleRecruiter {
		if err := s.userRepo.UpdateUserRole(user.ID, models.UserRolePendingStationCommander); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	request.User = user
	resp := toRequestResponse(request)
	return &resp, nil
}

func (s *RequestServiceImpl) ListPendingRequests() ([]dto.RequestResponse, error) {
	requests, err := s.requestRepo.FindPendingRequests()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, toRequestResponse(&requests[i]))
	}
	return resp, nil
}

func (s *RequestServiceImpl) PendingCount() (int64, error) {
	count, err := s.requestRepo.CountPendingRequests()
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *RequestServiceImpl) ReviewRequest(adminID, requestID string, approve bool) (*dto.RequestResponse, error) {
	request, err := s.requestRepo.FindRequestByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrInvalidOperation("auth", "request already reviewed")
	}

	newRole := models.UserRoleRecruiter
	request.Status = models.RequestStatusDenied
	if approve {
		request.Status = models.RequestStatusApproved
		newRole = models.UserRoleStationCommander
	}
	request.ReviewedBy = &adminID

	if err := s.requestRepo.UpdateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdateUserRole(request.UserID, newRole); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toRequestResponse(request)
	return &resp, nil
}

func toRequestResponse(r *models.StationCommanderRequest) dto.RequestResponse {
	resp := dto.RequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Reason:    r.Reason,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		resp.Username = r.User.Username
		resp.FullName = r.User.FullName
	}
	return resp
}
