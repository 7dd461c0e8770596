package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/pkg/apperrors"
)

type ExportService interface {
	// ExportCSV renders the caller's visible recruits, narrowed by the
	// same search and status filters as the list view, as a CSV file.
	ExportCSV(actorID string, criteria repositories.RecruitCriteria) (filename string, data []byte, err error)
	// ExportExcel renders recruits and survey responses as a two-sheet
	// workbook.
	ExportExcel(actorID string, criteria repositories.RecruitCriteria) (filename string, data []byte, err error)
}

type ExportServiceImpl struct {
	recruitRepo repositories.RecruitRepository
	userRepo    repositories.UserRepository
	surveyRepo  repositories.SurveyRepository
	now         func() time.Time
}

func NewExportService(
	recruitRepo repositories.RecruitRepository,
	userRepo repositories.UserRepository,
	surveyRepo repositories.SurveyRepository,
) ExportService {
	return &ExportServiceImpl{
		recruitRepo: recruitRepo,
		userRepo:    userRepo,
		surveyRepo:  surveyRepo,
		now:         time.Now,
	}
}

var csvHeader = []string{
	"ID", "First Name", "Last Name", "Email", "Phone", "City", "State",
	"Education", "Prior Service", "Status", "Source", "Scan Location",
	"Submitted Date",
}

func (s *ExportServiceImpl) ExportCSV(actorID string, criteria repositories.RecruitCriteria) (string, []byte, error) {
	recruits, err := s.visibleRecruits(actorID, criteria)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", nil, apperrors.InternalError(err)
	}
	for i := range recruits {
		r := &recruits[i]
		row := []string{
			r.ID,
			r.FirstName,
			r.LastName,
			r.Email,
			r.Phone,
			r.City,
			r.State,
			r.Education,
			strconv.FormatBool(r.PriorService),
			string(r.Status),
			string(r.Source),
			r.ScanLocation,
			shortDate(r.CreatedAt),
		}
		if err := w.Write(row); err != nil {
			return "", nil, apperrors.InternalError(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, apperrors.InternalError(err)
	}

	filename := fmt.Sprintf("army-recruits-%s.csv", s.now().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

var applicantColumns = []struct {
	Title string
	Width float64
}{
	{"ID", 12}, {"First Name", 12}, {"Last Name", 12}, {"Date of Birth", 12},
	{"Email", 25}, {"Phone", 15}, {"City", 25}, {"State", 15},
	{"Zip", 8}, {"Prior Service", 10}, {"Education", 18}, {"Status", 12},
	{"Source", 12}, {"Availability", 18}, {"GT Score", 15}, {"Ship Date", 12},
	{"Component", 12}, {"Actual MOS", 12}, {"Suggested MOS", 25}, {"Height", 15},
	{"Weight", 25}, {"Medical History", 15}, {"Interests", 30}, {"Scan Location", 12},
	{"IP", 10}, {"Submitted", 20},
}

var surveyColumns = []struct {
	Title string
	Width float64
}{
	{"Name", 20}, {"Email", 25}, {"Phone", 15}, {"Rating", 12},
	{"Feedback", 40}, {"Scan Location", 15}, {"Submitted", 20},
}

func (s *ExportServiceImpl) ExportExcel(actorID string, criteria repositories.RecruitCriteria) (string, []byte, error) {
	recruits, err := s.visibleRecruits(actorID, criteria)
	if err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.FindUserByID(actorID)
	if err != nil {
		return "", nil, apperrors.NewUnauthorizedError("unknown user")
	}
	surveys, err := s.surveyRepo.FindResponsesByQRCode(user.QRCode)
	if err != nil {
		return "", nil, apperrors.InternalError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const applicantSheet = "Applicants"
	f.SetSheetName(f.GetSheetName(0), applicantSheet)

	for i, col := range applicantColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(applicantSheet, cell, col.Title); err != nil {
			return "", nil, apperrors.InternalError(err)
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(applicantSheet, name, name, col.Width); err != nil {
			return "", nil, apperrors.InternalError(err)
		}
	}

	for rowIdx := range recruits {
		r := &recruits[rowIdx]
		row := []interface{}{
			r.ID, r.FirstName, r.LastName, shortDate(r.DateOfBirth),
			r.Email, r.Phone, r.City, r.State,
			r.ZipCode, strconv.FormatBool(r.PriorService), r.Education, string(r.Status),
			string(r.Source), string(r.Availability), formatIntPtr(r.GTScore), formatDatePtr(r.ShipDate),
			formatComponentPtr(r.Component), r.ActualMOS, string(r.SuggestedMOS), r.Height,
			r.Weight, r.MedicalHistory, r.Interests, r.ScanLocation,
			r.IPAddress, r.CreatedAt.Format("1/2/2006 15:04"),
		}
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(applicantSheet, cell, val); err != nil {
				return "", nil, apperrors.InternalError(err)
			}
		}
	}

	const surveySheet = "Survey Responses"
	if _, err := f.NewSheet(surveySheet); err != nil {
		return "", nil, apperrors.InternalError(err)
	}
	for i, col := range surveyColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(surveySheet, cell, col.Title); err != nil {
			return "", nil, apperrors.InternalError(err)
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(surveySheet, name, name, col.Width); err != nil {
			return "", nil, apperrors.InternalError(err)
		}
	}
	for rowIdx := range surveys {
		sr := &surveys[rowIdx]
		row := []interface{}{
			sr.Name, sr.Email, sr.Phone, formatIntPtr(sr.Rating),
			sr.Feedback, sr.ScanLocation, sr.CreatedAt.Format("1/2/2006 15:04"),
		}
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(surveySheet, cell, val); err != nil {
				return "", nil, apperrors.InternalError(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, apperrors.InternalError(err)
	}

	filename := fmt.Sprintf("army-recruiter-contacts-%s.xlsx", s.now().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

func (s *ExportServiceImpl) visibleRecruits(actorID string, criteria repositories.RecruitCriteria) ([]models.Recruit, error) {
	scope, _, err := resolveScope(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if criteria.Status != "" {
		canonical, ok := models.NormalizeRecruitStatus(criteria.Status)
		if !ok {
			return nil, apperrors.ErrInvalidStatus("recruit", "unknown status filter: "+criteria.Status)
		}
		criteria.Status = string(canonical)
	}
	// Exports cover the whole filtered set, never a page of it.
	criteria.Page = 0
	criteria.PageSize = 0
	recruits, _, err := s.recruitRepo.FindRecruits(scope, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return recruits, nil
}

// shortDate matches the M/D/YYYY rendering recruiters see in their
// spreadsheets.
func shortDate(t time.Time) string {
	return t.Format("1/2/2006")
}

func formatIntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return shortDate(*t)
}

func formatComponentPtr(c *models.Component) string {
	if c == nil {
		return ""
	}
	return string(*c)
}
