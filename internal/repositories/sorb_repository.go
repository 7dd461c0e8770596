package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"recruittrack/internal/models"
)

var ErrSorbLeadNotFound = errors.New("SORB lead not found")

type SorbLeadCriteria struct {
	Search   string `form:"search"`
	Stage    string `form:"stage"`
	DutyPost string `form:"duty_post"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// SorbAnalyticsCriteria narrows the funnel aggregation. Zero value
// means the whole visible lead set.
type SorbAnalyticsCriteria struct {
	DutyPost string `form:"duty_post"`
	GTMin    *int   `form:"gt_min" binding:"omitempty,min=0,max=200"`
	GTMax    *int   `form:"gt_max" binding:"omitempty,min=0,max=200"`
}

// PostCount is one duty post's lead tally, for top-post rankings.
type PostCount struct {
	DutyPost string `json:"dutyPost"`
	Count    int64  `json:"count"`
}

type SorbLeadRepository interface {
	CreateLead(lead *models.SorbLead) error
	FindLeadByID(id string) (*models.SorbLead, error)
	FindLeads(scope VisibilityScope, criteria SorbLeadCriteria) ([]models.SorbLead, int64, error)
	UpdateLead(lead *models.SorbLead) error
	UpdateLeadFields(id string, fields map[string]interface{}) error
	DeleteLead(id string) error

	CountByStage(scope VisibilityScope, criteria SorbAnalyticsCriteria) (map[models.SorbStage]int64, error)
	AverageGTScore(scope VisibilityScope) (float64, error)
	CountGTAtLeast(scope VisibilityScope, minScore int) (int64, error)
	CountInPipeline(scope VisibilityScope) (int64, error)
	TopDutyPosts(scope VisibilityScope, limit int) ([]PostCount, error)
}

type SorbLeadRepositoryImpl struct {
	db *gorm.DB
}

func NewSorbLeadRepository(db *gorm.DB) SorbLeadRepository {
	return &SorbLeadRepositoryImpl{db: db}
}

func (r *SorbLeadRepositoryImpl) scoped(scope VisibilityScope) *gorm.DB {
	query := r.db.Model(&models.SorbLead{})
	if scope.All {
		return query
	}
	if len(scope.RecruiterIDs) == 0 {
		return query.Where("1 = 0")
	}
	return query.Where("recruiter_id IN ?", scope.RecruiterIDs)
}

func (r *SorbLeadRepositoryImpl) CreateLead(lead *models.SorbLead) error {
	return r.db.Create(lead).Error
}

func (r *SorbLeadRepositoryImpl) FindLeadByID(id string) (*models.SorbLead, error) {
	var lead models.SorbLead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSorbLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *SorbLeadRepositoryImpl) FindLeads(scope VisibilityScope, criteria SorbLeadCriteria) ([]models.SorbLead, int64, error) {
	query := r.scoped(scope)

	if s := strings.TrimSpace(criteria.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	if criteria.Stage != "" {
		query = query.Where("stage = ?", criteria.Stage)
	}
	if criteria.DutyPost != "" {
		query = query.Where("duty_post = ?", criteria.DutyPost)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.PageSize > 0 {
		page := criteria.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(criteria.PageSize).Offset((page - 1) * criteria.PageSize)
	}

	var leads []models.SorbLead
	err := query.Order("created_at DESC").Find(&leads).Error
	return leads, total, err
}

func (r *SorbLeadRepositoryImpl) UpdateLead(lead *models.SorbLead) error {
	return r.db.Save(lead).Error
}

func (r *SorbLeadRepositoryImpl) UpdateLeadFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.SorbLead{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSorbLeadNotFound
	}
	return nil
}

func (r *SorbLeadRepositoryImpl) DeleteLead(id string) error {
	result := r.db.Delete(&models.SorbLead{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSorbLeadNotFound
	}
	return nil
}

func (r *SorbLeadRepositoryImpl) CountByStage(scope VisibilityScope, criteria SorbAnalyticsCriteria) (map[models.SorbStage]int64, error) {
	query := r.scoped(scope)
	if criteria.DutyPost != "" {
		query = query.Where("duty_post = ?", criteria.DutyPost)
	}
	if criteria.GTMin != nil {
		query = query.Where("gt_score >= ?", *criteria.GTMin)
	}
	if criteria.GTMax != nil {
		query = query.Where("gt_score <= ?", *criteria.GTMax)
	}

	type row struct {
		Stage models.SorbStage
		Count int64
	}
	var rows []row
	err := query.
		Select("stage, COUNT(*) as count").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.SorbStage]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Stage] = rw.Count
	}
	return counts, nil
}

func (r *SorbLeadRepositoryImpl) AverageGTScore(scope VisibilityScope) (float64, error) {
	var avg *float64
	err := r.scoped(scope).
		Where("gt_score IS NOT NULL").
		Select("AVG(gt_score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *SorbLeadRepositoryImpl) CountGTAtLeast(scope VisibilityScope, minScore int) (int64, error) {
	var count int64
	err := r.scoped(scope).Where("gt_score >= ?", minScore).Count(&count).Error
	return count, err
}

func (r *SorbLeadRepositoryImpl) CountInPipeline(scope VisibilityScope) (int64, error) {
	var count int64
	err := r.scoped(scope).Where("in_pipeline = ?", true).Count(&count).Error
	return count, err
}

func (r *SorbLeadRepositoryImpl) TopDutyPosts(scope VisibilityScope, limit int) ([]PostCount, error) {
	var rows []PostCount
	err := r.scoped(scope).
		Where("duty_post <> ''").
		Select("duty_post, COUNT(*) as count").
		Group("duty_post").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
