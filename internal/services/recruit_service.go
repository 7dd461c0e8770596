package services

import (
	"context"
	"encoding/json"
	"time"

	"recruittrack/internal/logger"
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

type RecruitService interface {
	// CreateRecruit handles the public intake form. actorID is empty for
	// anonymous submissions; a QR code in the request attributes the
	// recruit to its owner.
	CreateRecruit(ctx context.Context, req *dto.CreateRecruitRequest, actorID, clientIP string) (*dto.RecruitResponse, error)
	GetRecruit(actorID, recruitID string) (*dto.RecruitResponse, error)
	ListRecruits(actorID string, criteria repositories.RecruitCriteria) (*dto.RecruitListResponse, error)
	UpdateRecruit(actorID, recruitID string, req *dto.UpdateRecruitRequest) (*dto.RecruitResponse, error)
	UpdateStatus(actorID, recruitID string, req *dto.UpdateStatusRequest) (*dto.RecruitResponse, error)
	DeleteRecruit(actorID, recruitID string) error

	AddNote(actorID, recruitID string, req *dto.AddNoteRequest) (*dto.NoteResponse, error)
	GetNotes(actorID, recruitID string) ([]dto.NoteResponse, error)
}

type RecruitServiceImpl struct {
	recruitRepo repositories.RecruitRepository
	noteRepo    repositories.RecruitNoteRepository
	userRepo    repositories.UserRepository
	notifier    NotificationService
}

func NewRecruitService(
	recruitRepo repositories.RecruitRepository,
	noteRepo repositories.RecruitNoteRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
) RecruitService {
	return &RecruitServiceImpl{
		recruitRepo: recruitRepo,
		noteRepo:    noteRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *RecruitServiceImpl) CreateRecruit(ctx context.Context, req *dto.CreateRecruitRequest, actorID, clientIP string) (*dto.RecruitResponse, error) {
	recruit := &models.Recruit{
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Street:         req.Street,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Education:      req.Education,
		DriversLicense: req.DriversLicense,
		PriorService:   req.PriorService,
		Interests:      req.Interests,
		PreferredMOS:   req.PreferredMOS,
		Availability:   models.Availability(req.Availability),
		Status:         models.RecruitStatusPending,
		Source:         models.SourceDirect,
		ScanLocation:   req.ScanLocation,
		IPAddress:      clientIP,
	}
	if req.PriorService {
		recruit.PriorServiceBranch = req.PriorServiceBranch
		recruit.PriorServiceYears = req.PriorServiceYears
	}

	switch {
	case req.RecruiterQRCode != "":
		owner, err := s.userRepo.FindUserByQRCode(req.RecruiterQRCode)
		if err != nil {
			// Bad codes do not fail the submission; the recruit just
			// stays unattributed.
			logger.CtxWarn(ctx, "unknown recruiter QR code on intake", "qr_code", req.RecruiterQRCode)
		} else {
			recruit.RecruiterID = &owner.ID
			recruit.Source = models.SourceQRCode
		}
	case actorID != "":
		recruit.RecruiterID = &actorID
	}

	if err := s.recruitRepo.CreateRecruit(recruit); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if recruit.RecruiterID != nil && *recruit.RecruiterID != actorID {
		s.notifier.NotifyNewRecruit(ctx, *recruit.RecruiterID, recruit)
	}

	resp := toRecruitResponse(recruit)
	return &resp, nil
}

func (s *RecruitServiceImpl) GetRecruit(actorID, recruitID string) (*dto.RecruitResponse, error) {
	recruit, _, err := s.loadVisible(actorID, recruitID)
	if err != nil {
		return nil, err
	}
	resp := toRecruitResponse(recruit)
	return &resp, nil
}

func (s *RecruitServiceImpl) ListRecruits(actorID string, criteria repositories.RecruitCriteria) (*dto.RecruitListResponse, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	// Status filters arrive in either surface vocabulary.
	if criteria.Status != "" {
		canonical, ok := models.NormalizeRecruitStatus(criteria.Status)
		if !ok {
			return nil, apperrors.ErrInvalidStatus("recruit", "unknown status filter: "+criteria.Status)
		}
		criteria.Status = string(canonical)
	}

	recruits, total, err := s.recruitRepo.FindRecruits(scope, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.RecruitListResponse{
		Recruits: make([]dto.RecruitResponse, 0, len(recruits)),
		Total:    total,
	}
	for i := range recruits {
		resp.Recruits = append(resp.Recruits, toRecruitResponse(&recruits[i]))
	}
	return resp, nil
}

func (s *RecruitServiceImpl) UpdateRecruit(actorID, recruitID string, req *dto.UpdateRecruitRequest) (*dto.RecruitResponse, error) {
	recruit, _, err := s.loadVisible(actorID, recruitID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		recruit.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		recruit.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		recruit.LastName = *req.LastName
	}
	if req.Email != nil {
		recruit.Email = *req.Email
	}
	if req.Phone != nil {
		recruit.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		recruit.DateOfBirth = *req.DateOfBirth
	}
	if req.Street != nil {
		recruit.Street = *req.Street
	}
	if req.City != nil {
		recruit.City = *req.City
	}
	if req.State != nil {
		recruit.State = *req.State
	}
	if req.ZipCode != nil {
		recruit.ZipCode = *req.ZipCode
	}
	if req.Education != nil {
		recruit.Education = *req.Education
	}
	if req.DriversLicense != nil {
		recruit.DriversLicense = *req.DriversLicense
	}
	if req.PriorService != nil {
		recruit.PriorService = *req.PriorService
	}
	// Branch and years only mean something while the flag is set.
	if recruit.PriorService {
		if req.PriorServiceBranch != nil {
			recruit.PriorServiceBranch = *req.PriorServiceBranch
		}
		if req.PriorServiceYears != nil {
			recruit.PriorServiceYears = req.PriorServiceYears
		}
	} else {
		recruit.PriorServiceBranch = ""
		recruit.PriorServiceYears = nil
	}
	if req.Interests != nil {
		recruit.Interests = *req.Interests
	}
	if req.PreferredMOS != nil {
		recruit.PreferredMOS = *req.PreferredMOS
	}
	if req.Availability != nil {
		recruit.Availability = models.Availability(*req.Availability)
	}
	if req.GTScore != nil {
		recruit.GTScore = req.GTScore
	}

	if err := s.recruitRepo.UpdateRecruit(recruit); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toRecruitResponse(recruit)
	return &resp, nil
}

// UpdateStatus normalizes the incoming vocabulary and applies the new
// status. Transitions are flat: any status may move to any other.
// Moving away from qualified clears the shipping block, since a ship
// date is only valid on a qualified recruit.
func (s *RecruitServiceImpl) UpdateStatus(actorID, recruitID string, req *dto.UpdateStatusRequest) (*dto.RecruitResponse, error) {
	recruit, _, err := s.loadVisible(actorID, recruitID)
	if err != nil {
		return nil, err
	}

	status, ok := models.NormalizeRecruitStatus(req.Status)
	if !ok {
		return nil, apperrors.ErrInvalidStatus("recruit", "unknown status: "+req.Status)
	}

	if recruit.ShipDate != nil && status != models.RecruitStatusQualified {
		recruit.ShipDate = nil
		recruit.Component = nil
		recruit.ActualMOS = ""
	}

	recruit.Status = status
	if err := s.recruitRepo.UpdateRecruit(recruit); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toRecruitResponse(recruit)
	return &resp, nil
}

func (s *RecruitServiceImpl) DeleteRecruit(actorID, recruitID string) error {
	if _, _, err := s.loadVisible(actorID, recruitID); err != nil {
		return err
	}
	if err := s.recruitRepo.DeleteRecruit(recruitID); err != nil {
		if apperrors.Is(err, repositories.ErrRecruitNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RecruitServiceImpl) AddNote(actorID, recruitID string, req *dto.AddNoteRequest) (*dto.NoteResponse, error) {
	if _, _, err := s.loadVisible(actorID, recruitID); err != nil {
		return nil, err
	}

	author := "Unknown"
	if user, err := s.userRepo.FindUserByID(actorID); err == nil {
		author = user.FullName
	}

	note, err := s.noteRepo.AppendNote(recruitID, author, req.Note)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecruitNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (s *RecruitServiceImpl) GetNotes(actorID, recruitID string) ([]dto.NoteResponse, error) {
	if _, _, err := s.loadVisible(actorID, recruitID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListNotes(recruitID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecruitNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, toNoteResponse(&notes[i]))
	}
	return resp, nil
}

// loadVisible fetches a recruit and enforces the caller's visibility
// scope, hiding existence of out-of-scope records behind a 404.
func (s *RecruitServiceImpl) loadVisible(actorID, recruitID string) (*models.Recruit, repositories.VisibilityScope, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, scope, err
	}

	recruit, err := s.recruitRepo.FindRecruitByID(recruitID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecruitNotFound) {
			return nil, scope, apperrors.ErrNotFound(err)
		}
		return nil, scope, apperrors.InternalError(err)
	}

	if !scopeAllows(scope, recruit.RecruiterID) {
		return nil, scope, apperrors.ErrNotFound(repositories.ErrRecruitNotFound)
	}
	return recruit, scope, nil
}

func toRecruitResponse(recruit *models.Recruit) dto.RecruitResponse {
	resp := dto.RecruitResponse{
		ID:                 recruit.ID,
		FirstName:          recruit.FirstName,
		MiddleName:         recruit.MiddleName,
		LastName:           recruit.LastName,
		Email:              recruit.Email,
		Phone:              recruit.Phone,
		DateOfBirth:        recruit.DateOfBirth,
		Age:                recruit.Age(time.Now()),
		Street:             recruit.Street,
		City:               recruit.City,
		State:              recruit.State,
		ZipCode:            recruit.ZipCode,
		Education:          recruit.Education,
		DriversLicense:     recruit.DriversLicense,
		PriorService:       recruit.PriorService,
		PriorServiceBranch: recruit.PriorServiceBranch,
		PriorServiceYears:  recruit.PriorServiceYears,
		Interests:          recruit.Interests,
		PreferredMOS:       recruit.PreferredMOS,
		Availability:       recruit.Availability,
		Status:             recruit.Status,
		StatusLabel:        recruit.Status.DetailLabel(),
		Source:             recruit.Source,
		ScanLocation:       recruit.ScanLocation,
		RecruiterID:        recruit.RecruiterID,
		GTScore:            recruit.GTScore,
		ShipDate:           recruit.ShipDate,
		Component:          recruit.Component,
		ActualMOS:          recruit.ActualMOS,
		CreatedAt:          recruit.CreatedAt,
		UpdatedAt:          recruit.UpdatedAt,
	}
	if len(recruit.SuggestedMOS) > 0 {
		var codes []string
		if err := json.Unmarshal(recruit.SuggestedMOS, &codes); err == nil {
			resp.SuggestedMOS = codes
		}
	}
	return resp
}

func toNoteResponse(note *models.RecruitNote) dto.NoteResponse {
	return dto.NoteResponse{
		ID:        note.ID,
		Seq:       note.Seq,
		Author:    note.Author,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
	}
}
