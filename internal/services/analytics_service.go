package services

import (
	"time"

	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

type AnalyticsService interface {
	RecruiterStats(actorID string) (*dto.RecruiterStats, error)
}

type AnalyticsServiceImpl struct {
	recruitRepo repositories.RecruitRepository
	userRepo    repositories.UserRepository
	surveyRepo  repositories.SurveyRepository
	now         func() time.Time
}

func NewAnalyticsService(
	recruitRepo repositories.RecruitRepository,
	userRepo repositories.UserRepository,
	surveyRepo repositories.SurveyRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		recruitRepo: recruitRepo,
		userRepo:    userRepo,
		surveyRepo:  surveyRepo,
		now:         time.Now,
	}
}

// RecruiterStats aggregates the dashboard numbers for the caller's
// scope. Every status bucket is present even when zero, keyed by the
// dashboard vocabulary.
func (s *AnalyticsServiceImpl) RecruiterStats(actorID string) (*dto.RecruiterStats, error) {
	scope, user, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	counts, err := s.recruitRepo.CountByStatus(scope)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	statusCounts := make(map[string]int64, 4)
	var total int64
	for _, status := range models.RecruitStatuses() {
		n := counts[status]
		statusCounts[status.DashboardLabel()] = n
		total += n
	}

	sources, err := s.recruitRepo.CountBySource(scope)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	sourceCounts := make(map[string]int64, 2)
	for _, source := range models.RecruitSources() {
		sourceCounts[string(source)] = sources[source]
	}

	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	newThisWeek, err := s.recruitRepo.CountCreatedSince(scope, weekAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	newThisMonth, err := s.recruitRepo.CountCreatedSince(scope, monthAgo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upcoming, err := s.recruitRepo.CountShippersFrom(scope, midnight(now))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	surveys, err := s.surveyRepo.CountResponsesByQRCode(user.QRCode)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RecruiterStats{
		TotalRecruits:    total,
		StatusCounts:     statusCounts,
		SourceCounts:     sourceCounts,
		NewThisWeek:      newThisWeek,
		NewThisMonth:     newThisMonth,
		UpcomingShippers: upcoming,
		SurveyResponses:  surveys,
	}, nil
}
