package services

import (
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

type SurveyService interface {
	// SubmitSurvey handles the public QR survey form. The QR code must
	// belong to a real recruiter.
	SubmitSurvey(req *dto.CreateSurveyRequest, clientIP string) (*dto.SurveyResponse, error)
	MyResponses(actorID string) (*dto.SurveyListResponse, error)
}

type SurveyServiceImpl struct {
	surveyRepo repositories.SurveyRepository
	userRepo   repositories.UserRepository
}

func NewSurveyService(surveyRepo repositories.SurveyRepository, userRepo repositories.UserRepository) SurveyService {
	return &SurveyServiceImpl{surveyRepo: surveyRepo, userRepo: userRepo}
}

func (s *SurveyServiceImpl) SubmitSurvey(req *dto.CreateSurveyRequest, clientIP string) (*dto.SurveyResponse, error) {
	if _, err := s.userRepo.FindUserByQRCode(req.RecruiterQRCode); err != nil {
		return nil, apperrors.NewBadRequestError("unknown QR code")
	}

	response := &models.QrSurveyResponse{
		RecruiterQRCode: req.RecruiterQRCode,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Age:             req.Age,
		Feedback:        req.Feedback,
		Rating:          req.Rating,
		ScanLocation:    req.ScanLocation,
		IPAddress:       clientIP,
	}
	if err := s.surveyRepo.CreateResponse(response); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toSurveyResponse(response)
	return &resp, nil
}

func (s *SurveyServiceImpl) MyResponses(actorID string) (*dto.SurveyListResponse, error) {
	user, err := s.userRepo.FindUserByID(actorID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("unknown user")
	}

	responses, err := s.surveyRepo.FindResponsesByQRCode(user.QRCode)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.SurveyListResponse{
		Responses: make([]dto.SurveyResponse, 0, len(responses)),
		Total:     len(responses),
	}
	for i := range responses {
		resp.Responses = append(resp.Responses, toSurveyResponse(&responses[i]))
	}
	return resp, nil
}

func toSurveyResponse(r *models.QrSurveyResponse) dto.SurveyResponse {
	return dto.SurveyResponse{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Age:          r.Age,
		Feedback:     r.Feedback,
		Rating:       r.Rating,
		ScanLocation: r.ScanLocation,
		CreatedAt:    r.CreatedAt,
	}
}
