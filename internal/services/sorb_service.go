package services

import (
	"math"
	"time"

	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

// GT score thresholds for special operations programs.
const (
	GTQualifiedScore       = 105
	GTHighlyQualifiedScore = 110
)

type SorbService interface {
	CreateLead(actorID string, req *dto.CreateSorbLeadRequest) (*dto.SorbLeadResponse, error)
	GetLead(actorID, leadID string) (*dto.SorbLeadResponse, error)
	ListLeads(actorID string, criteria repositories.SorbLeadCriteria) (*dto.SorbLeadListResponse, error)
	UpdateLead(actorID, leadID string, req *dto.UpdateSorbLeadRequest) (*dto.SorbLeadResponse, error)
	UpdateStage(actorID, leadID string, req *dto.UpdateSorbStageRequest) (*dto.SorbLeadResponse, error)
	DeleteLead(actorID, leadID string) error

	Analytics(actorID string, criteria repositories.SorbAnalyticsCriteria) (*dto.SorbAnalytics, error)
	PipelineAnalytics(actorID string) (*dto.SorbPipelineAnalytics, error)
}

type SorbServiceImpl struct {
	leadRepo repositories.SorbLeadRepository
	userRepo repositories.UserRepository
	now      func() time.Time
}

func NewSorbService(leadRepo repositories.SorbLeadRepository, userRepo repositories.UserRepository) SorbService {
	return &SorbServiceImpl{leadRepo: leadRepo, userRepo: userRepo, now: time.Now}
}

func (s *SorbServiceImpl) CreateLead(actorID string, req *dto.CreateSorbLeadRequest) (*dto.SorbLeadResponse, error) {
	lead := &models.SorbLead{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Rank:          req.Rank,
		CurrentUnit:   req.CurrentUnit,
		DutyPost:      req.DutyPost,
		CurrentMOS:    req.CurrentMOS,
		TimeInGrade:   req.TimeInGrade,
		GTScore:       req.GTScore,
		PTScore:       req.PTScore,
		HasAirborne:   req.HasAirborne,
		HasMedical:    req.HasMedical,
		NoMoralWaiver: req.NoMoralWaiver,
		SocomUnit:     req.SocomUnit,
		InPipeline:    req.InPipeline,
		Stage:         models.SorbStageProspect,
		TargetProgram: req.TargetProgram,
		RecruiterID:   &actorID,
	}

	if err := s.leadRepo.CreateLead(lead); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toSorbLeadResponse(lead)
	return &resp, nil
}

func (s *SorbServiceImpl) GetLead(actorID, leadID string) (*dto.SorbLeadResponse, error) {
	lead, err := s.loadVisibleLead(actorID, leadID)
	if err != nil {
		return nil, err
	}
	resp := toSorbLeadResponse(lead)
	return &resp, nil
}

func (s *SorbServiceImpl) ListLeads(actorID string, criteria repositories.SorbLeadCriteria) (*dto.SorbLeadListResponse, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	if criteria.Stage != "" {
		stage, ok := models.NormalizeSorbStage(criteria.Stage)
		if !ok {
			return nil, apperrors.ErrInvalidStatus("sorb", "unknown stage filter: "+criteria.Stage)
		}
		criteria.Stage = string(stage)
	}

	leads, total, err := s.leadRepo.FindLeads(scope, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.SorbLeadListResponse{
		Leads: make([]dto.SorbLeadResponse, 0, len(leads)),
		Total: total,
	}
	for i := range leads {
		resp.Leads = append(resp.Leads, toSorbLeadResponse(&leads[i]))
	}
	return resp, nil
}

func (s *SorbServiceImpl) UpdateLead(actorID, leadID string, req *dto.UpdateSorbLeadRequest) (*dto.SorbLeadResponse, error) {
	lead, err := s.loadVisibleLead(actorID, leadID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		lead.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		lead.LastName = *req.LastName
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Rank != nil {
		lead.Rank = *req.Rank
	}
	if req.CurrentUnit != nil {
		lead.CurrentUnit = *req.CurrentUnit
	}
	if req.DutyPost != nil {
		lead.DutyPost = *req.DutyPost
	}
	if req.CurrentMOS != nil {
		lead.CurrentMOS = *req.CurrentMOS
	}
	if req.TimeInGrade != nil {
		lead.TimeInGrade = *req.TimeInGrade
	}
	if req.GTScore != nil {
		lead.GTScore = req.GTScore
	}
	if req.PTScore != nil {
		lead.PTScore = req.PTScore
	}
	if req.HasAirborne != nil {
		lead.HasAirborne = *req.HasAirborne
	}
	if req.HasMedical != nil {
		lead.HasMedical = *req.HasMedical
	}
	if req.NoMoralWaiver != nil {
		lead.NoMoralWaiver = *req.NoMoralWaiver
	}
	if req.SocomUnit != nil {
		lead.SocomUnit = *req.SocomUnit
	}
	if req.InPipeline != nil {
		lead.InPipeline = *req.InPipeline
	}
	if req.TargetProgram != nil {
		lead.TargetProgram = *req.TargetProgram
	}

	if err := s.leadRepo.UpdateLead(lead); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toSorbLeadResponse(lead)
	return &resp, nil
}

func (s *SorbServiceImpl) UpdateStage(actorID, leadID string, req *dto.UpdateSorbStageRequest) (*dto.SorbLeadResponse, error) {
	lead, err := s.loadVisibleLead(actorID, leadID)
	if err != nil {
		return nil, err
	}

	stage, ok := models.NormalizeSorbStage(req.Stage)
	if !ok {
		return nil, apperrors.ErrInvalidStatus("sorb", "unknown stage: "+req.Stage)
	}

	lead.Stage = stage
	if stage == models.SorbStageDeclined {
		lead.DeclineReason = req.DeclineReason
	} else {
		lead.DeclineReason = ""
	}
	if stage != models.SorbStageProspect && lead.ContactedAt == nil {
		now := s.now()
		lead.ContactedAt = &now
	}

	if err := s.leadRepo.UpdateLead(lead); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toSorbLeadResponse(lead)
	return &resp, nil
}

func (s *SorbServiceImpl) DeleteLead(actorID, leadID string) error {
	if _, err := s.loadVisibleLead(actorID, leadID); err != nil {
		return err
	}
	if err := s.leadRepo.DeleteLead(leadID); err != nil {
		if apperrors.Is(err, repositories.ErrSorbLeadNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SorbServiceImpl) Analytics(actorID string, criteria repositories.SorbAnalyticsCriteria) (*dto.SorbAnalytics, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	counts, err := s.leadRepo.CountByStage(scope, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	funnel, total := buildStageFunnel(counts)
	return &dto.SorbAnalytics{TotalLeads: total, StageFunnel: funnel}, nil
}

func (s *SorbServiceImpl) PipelineAnalytics(actorID string) (*dto.SorbPipelineAnalytics, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	counts, err := s.leadRepo.CountByStage(scope, repositories.SorbAnalyticsCriteria{})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	funnel, total := buildStageFunnel(counts)

	avgGT, err := s.leadRepo.AverageGTScore(scope)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	gtQualified, err := s.leadRepo.CountGTAtLeast(scope, GTQualifiedScore)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	gtHigh, err := s.leadRepo.CountGTAtLeast(scope, GTHighlyQualifiedScore)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	inPipeline, err := s.leadRepo.CountInPipeline(scope)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	topPosts, err := s.leadRepo.TopDutyPosts(scope, 5)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	posts := make([]dto.PostCount, 0, len(topPosts))
	for _, p := range topPosts {
		posts = append(posts, dto.PostCount{DutyPost: p.DutyPost, Count: p.Count})
	}

	return &dto.SorbPipelineAnalytics{
		Total:             total,
		AvgGTScore:        math.Round(avgGT*10) / 10,
		GTQualified:       gtQualified,
		GTHighlyQualified: gtHigh,
		InPipeline:        inPipeline,
		StageFunnel:       funnel,
		TopPosts:          posts,
	}, nil
}

func (s *SorbServiceImpl) loadVisibleLead(actorID, leadID string) (*models.SorbLead, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	lead, err := s.leadRepo.FindLeadByID(leadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSorbLeadNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !scopeAllows(scope, lead.RecruiterID) {
		return nil, apperrors.ErrNotFound(repositories.ErrSorbLeadNotFound)
	}
	return lead, nil
}

// buildStageFunnel renders stage counts in fixed funnel order, keeping
// zero stages visible. Each stage carries its rounded share of the
// total.
func buildStageFunnel(counts map[models.SorbStage]int64) ([]dto.StageCount, int64) {
	funnel := make([]dto.StageCount, 0, len(models.SorbStages()))
	var total int64
	for _, stage := range models.SorbStages() {
		n := counts[stage]
		funnel = append(funnel, dto.StageCount{Stage: stage, Count: n})
		total += n
	}
	if total > 0 {
		for i := range funnel {
			funnel[i].Percent = int(math.Round(float64(funnel[i].Count) / float64(total) * 100))
		}
	}
	return funnel, total
}

// ReadinessScore grades a lead 0-100 on how close they are to a special
// operations contract.
func ReadinessScore(lead *models.SorbLead) int {
	score := 0

	if lead.GTScore != nil {
		switch {
		case *lead.GTScore >= GTHighlyQualifiedScore:
			score += 25
		case *lead.GTScore >= GTQualifiedScore:
			score += 15
		case *lead.GTScore >= 100:
			score += 8
		}
	}
	if lead.ContactedAt != nil {
		score += 10
	}
	if lead.HasMedical {
		score += 15
	}
	if lead.HasAirborne {
		score += 10
	}
	if lead.NoMoralWaiver {
		score += 5
	}
	if lead.SocomUnit {
		score += 15
	}
	if lead.InPipeline {
		score += 5
	}
	if lead.PTScore != nil {
		// Up to 15 points, proportional over a 300-point APFT scale.
		pts := int(math.Round(float64(*lead.PTScore) / 300 * 15))
		if pts > 15 {
			pts = 15
		}
		score += pts
	}

	if score > 100 {
		score = 100
	}
	return score
}

func toSorbLeadResponse(lead *models.SorbLead) dto.SorbLeadResponse {
	return dto.SorbLeadResponse{
		ID:             lead.ID,
		FirstName:      lead.FirstName,
		LastName:       lead.LastName,
		Email:          lead.Email,
		Phone:          lead.Phone,
		Rank:           lead.Rank,
		CurrentUnit:    lead.CurrentUnit,
		DutyPost:       lead.DutyPost,
		CurrentMOS:     lead.CurrentMOS,
		TimeInGrade:    lead.TimeInGrade,
		GTScore:        lead.GTScore,
		PTScore:        lead.PTScore,
		HasAirborne:    lead.HasAirborne,
		HasMedical:     lead.HasMedical,
		NoMoralWaiver:  lead.NoMoralWaiver,
		SocomUnit:      lead.SocomUnit,
		InPipeline:     lead.InPipeline,
		Stage:          lead.Stage,
		TargetProgram:  lead.TargetProgram,
		DeclineReason:  lead.DeclineReason,
		ReadinessScore: ReadinessScore(lead),
		ContactedAt:    lead.ContactedAt,
		CreatedAt:      lead.CreatedAt,
		UpdatedAt:      lead.UpdatedAt,
	}
}
