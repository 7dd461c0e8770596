package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"recruittrack/internal/models"
)

var ErrRecruitNotFound = errors.New("recruit not found")

// VisibilityScope restricts queries to the recruits a caller may see.
// All bypasses the filter; otherwise only records assigned to one of
// RecruiterIDs match. Services resolve the caller's role into a scope
// before hitting the repository.
type VisibilityScope struct {
	All          bool
	RecruiterIDs []string
}

// ScopeAll is the unrestricted scope used for admins and system tasks.
func ScopeAll() VisibilityScope {
	return VisibilityScope{All: true}
}

// ScopeRecruiters restricts visibility to the given recruiter IDs.
func ScopeRecruiters(ids ...string) VisibilityScope {
	return VisibilityScope{RecruiterIDs: ids}
}

// RecruitCriteria holds the list filters. Search matches first name,
// last name or email, case-insensitively. Status accepts canonical or
// alias vocabulary; callers normalize before querying.
type RecruitCriteria struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Source   string `form:"source"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

type RecruitRepository interface {
	CreateRecruit(recruit *models.Recruit) error
	FindRecruitByID(id string) (*models.Recruit, error)
	FindRecruits(scope VisibilityScope, criteria RecruitCriteria) ([]models.Recruit, int64, error)
	UpdateRecruit(recruit *models.Recruit) error
	UpdateRecruitFields(id string, fields map[string]interface{}) error
	DeleteRecruit(id string) error

	CountByStatus(scope VisibilityScope) (map[models.RecruitStatus]int64, error)
	CountBySource(scope VisibilityScope) (map[models.RecruitSource]int64, error)
	CountCreatedSince(scope VisibilityScope, since time.Time) (int64, error)
	FindShippers(scope VisibilityScope) ([]models.Recruit, error)
	FindShipperCandidates(scope VisibilityScope) ([]models.Recruit, error)
	CountShippersFrom(scope VisibilityScope, from time.Time) (int64, error)
}

type RecruitRepositoryImpl struct {
	db *gorm.DB
}

func NewRecruitRepository(db *gorm.DB) RecruitRepository {
	return &RecruitRepositoryImpl{db: db}
}

func (r *RecruitRepositoryImpl) scoped(scope VisibilityScope) *gorm.DB {
	query := r.db.Model(&models.Recruit{})
	if scope.All {
		return query
	}
	if len(scope.RecruiterIDs) == 0 {
		// Empty scope matches nothing.
		return query.Where("1 = 0")
	}
	return query.Where("recruiter_id IN ?", scope.RecruiterIDs)
}

func (r *RecruitRepositoryImpl) CreateRecruit(recruit *models.Recruit) error {
	return r.db.Create(recruit).Error
}

func (r *RecruitRepositoryImpl) FindRecruitByID(id string) (*models.Recruit, error) {
	var recruit models.Recruit
	err := r.db.Preload("Recruiter").First(&recruit, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecruitNotFound
		}
		return nil, err
	}
	return &recruit, nil
}

func (r *RecruitRepositoryImpl) FindRecruits(scope VisibilityScope, criteria RecruitCriteria) ([]models.Recruit, int64, error) {
	query := r.scoped(scope)

	if s := strings.TrimSpace(criteria.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Source != "" {
		query = query.Where("source = ?", criteria.Source)
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

	var recruits []models.Recruit
	err := query.Order("created_at DESC").Find(&recruits).Error
	return recruits, total, err
}

func (r *RecruitRepositoryImpl) UpdateRecruit(recruit *models.Recruit) error {
	return r.db.Save(recruit).Error
}

func (r *RecruitRepositoryImpl) UpdateRecruitFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Recruit{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecruitNotFound
	}
	return nil
}

func (r *RecruitRepositoryImpl) DeleteRecruit(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recruit_id = ?", id).Delete(&models.RecruitNote{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Recruit{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRecruitNotFound
		}
		return nil
	})
}

func (r *RecruitRepositoryImpl) CountByStatus(scope VisibilityScope) (map[models.RecruitStatus]int64, error) {
	type row struct {
		Status models.RecruitStatus
		Count  int64
	}
	var rows []row
	err := r.scoped(scope).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RecruitStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *RecruitRepositoryImpl) CountBySource(scope VisibilityScope) (map[models.RecruitSource]int64, error) {
	type row struct {
		Source models.RecruitSource
		Count  int64
	}
	var rows []row
	err := r.scoped(scope).
		Select("source, COUNT(*) as count").
		Group("source").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RecruitSource]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Source] = rw.Count
	}
	return counts, nil
}

func (r *RecruitRepositoryImpl) CountCreatedSince(scope VisibilityScope, since time.Time) (int64, error) {
	var count int64
	err := r.scoped(scope).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

// FindShippers returns every recruit holding a ship date, soonest
// first. Past dates stay on the list; urgency grading is the caller's
// concern.
func (r *RecruitRepositoryImpl) FindShippers(scope VisibilityScope) ([]models.Recruit, error) {
	var recruits []models.Recruit
	err := r.scoped(scope).
		Preload("Recruiter").
		Where("ship_date IS NOT NULL").
		Order("ship_date ASC").
		Find(&recruits).Error
	return recruits, err
}

// FindShipperCandidates returns qualified recruits that do not yet have
// a ship date assigned.
func (r *RecruitRepositoryImpl) FindShipperCandidates(scope VisibilityScope) ([]models.Recruit, error) {
	var recruits []models.Recruit
	err := r.scoped(scope).
		Where("status = ? AND ship_date IS NULL", models.RecruitStatusQualified).
		Order("created_at DESC").
		Find(&recruits).Error
	return recruits, err
}

// CountShippersFrom counts recruits whose ship date falls on or after
// from.
func (r *RecruitRepositoryImpl) CountShippersFrom(scope VisibilityScope, from time.Time) (int64, error) {
	var count int64
	err := r.scoped(scope).
		Where("ship_date IS NOT NULL AND ship_date >= ?", from).
		Count(&count).Error
	return count, err
}
