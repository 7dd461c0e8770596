package services

import (
	"context"
	"time"

	"recruittrack/internal/logger"
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

// shipperAlertWindowDays is how close a ship date has to be before the
// owning recruiter gets an alert.
const shipperAlertWindowDays = 3

type ShipperService interface {
	// UpdateShipping sets or clears the shipping block. Assigning a ship
	// date requires the recruit to be qualified; recruits inside the
	// alert window trigger an immediate shipper alert.
	UpdateShipping(ctx context.Context, actorID, recruitID string, req *dto.UpdateShippingRequest) (*dto.RecruitResponse, error)
	// ListShippers returns every visible recruit with a ship date,
	// including dates already in the past.
	ListShippers(actorID string) (*dto.ShipperListResponse, error)
	ListCandidates(actorID string) ([]dto.ShipperCandidate, error)
}

type ShipperServiceImpl struct {
	recruitRepo repositories.RecruitRepository
	userRepo    repositories.UserRepository
	notifier    NotificationService
	now         func() time.Time
}

func NewShipperService(
	recruitRepo repositories.RecruitRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
) ShipperService {
	return &ShipperServiceImpl{
		recruitRepo: recruitRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *ShipperServiceImpl) UpdateShipping(ctx context.Context, actorID, recruitID string, req *dto.UpdateShippingRequest) (*dto.RecruitResponse, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	recruit, err := s.recruitRepo.FindRecruitByID(recruitID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecruitNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !scopeAllows(scope, recruit.RecruiterID) {
		return nil, apperrors.ErrNotFound(repositories.ErrRecruitNotFound)
	}

	if req.ShipDate != nil && recruit.Status != models.RecruitStatusQualified {
		return nil, apperrors.ErrShipDateRequiresQualified
	}

	recruit.ShipDate = req.ShipDate
	if req.ShipDate == nil {
		recruit.Component = nil
		recruit.ActualMOS = ""
	} else {
		if req.Component != nil {
			component := models.Component(*req.Component)
			recruit.Component = &component
		}
		if req.ActualMOS != nil {
			recruit.ActualMOS = *req.ActualMOS
		}
	}

	if err := s.recruitRepo.UpdateRecruit(recruit); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if recruit.ShipDate != nil && recruit.RecruiterID != nil {
		days := DaysUntilShip(s.now(), *recruit.ShipDate)
		if days >= 0 && days <= shipperAlertWindowDays {
			s.notifier.NotifyShipperAlert(ctx, *recruit.RecruiterID, recruit, days)
			s.alertStationCommanders(ctx, *recruit.RecruiterID, recruit, days)
		}
	}

	resp := toRecruitResponse(recruit)
	return &resp, nil
}

// alertStationCommanders mirrors the shipper alert to commanders of the
// owning recruiter's station. Dedup happens per recipient.
func (s *ShipperServiceImpl) alertStationCommanders(ctx context.Context, ownerID string, recruit *models.Recruit, days int) {
	owner, err := s.userRepo.FindUserByID(ownerID)
	if err != nil || owner.StationID == nil {
		return
	}
	commanders, err := s.userRepo.FindStationCommanders(*owner.StationID)
	if err != nil {
		logger.CtxWithError(ctx, "station commander lookup failed", err, "station_id", *owner.StationID)
		return
	}
	for i := range commanders {
		if commanders[i].ID == ownerID {
			continue
		}
		s.notifier.NotifyShipperAlert(ctx, commanders[i].ID, recruit, days)
	}
}

func (s *ShipperServiceImpl) ListShippers(actorID string) (*dto.ShipperListResponse, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	recruits, err := s.recruitRepo.FindShippers(scope)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ShipperListResponse{
		Shippers: make([]dto.ShipperResponse, 0, len(recruits)),
		Total:    len(recruits),
	}
	for i := range recruits {
		r := &recruits[i]
		days := DaysUntilShip(s.now(), *r.ShipDate)
		shipper := dto.ShipperResponse{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Phone:     r.Phone,
			ShipDate:  *r.ShipDate,
			Component: r.Component,
			ActualMOS: r.ActualMOS,
			DaysUntil: days,
			Urgency:   UrgencyFor(days),
		}
		if r.Recruiter != nil {
			shipper.RecruiterName = r.Recruiter.FullName
			shipper.RecruiterRank = r.Recruiter.Rank
		}
		resp.Shippers = append(resp.Shippers, shipper)
	}
	return resp, nil
}

func (s *ShipperServiceImpl) ListCandidates(actorID string) ([]dto.ShipperCandidate, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	recruits, err := s.recruitRepo.FindShipperCandidates(scope)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidates := make([]dto.ShipperCandidate, 0, len(recruits))
	for i := range recruits {
		r := &recruits[i]
		candidates = append(candidates, dto.ShipperCandidate{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Phone:     r.Phone,
			GTScore:   r.GTScore,
		})
	}
	return candidates, nil
}

// DaysUntilShip counts whole calendar days from now to the ship date,
// comparing midnights so the answer does not drift during the day.
func DaysUntilShip(now, shipDate time.Time) int {
	return int(midnight(shipDate).Sub(midnight(now)).Hours() / 24)
}

// UrgencyFor buckets a days-until-ship count.
func UrgencyFor(days int) string {
	switch {
	case days <= 3:
		return dto.UrgencyHigh
	case days <= 7:
		return dto.UrgencyMedium
	default:
		return dto.UrgencyLow
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
