package services

import (
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/pkg/apperrors"
)

// resolveScope turns a caller into the visibility scope their role
// grants: admins see everything, station commanders see their station's
// recruiters, everyone else sees only their own records.
func resolveScope(userRepo repositories.UserRepository, userID string) (repositories.VisibilityScope, *models.User, error) {
	user, err := userRepo.FindUserByID(userID)
	if err != nil {
		return repositories.VisibilityScope{}, nil, apperrors.NewUnauthorizedError("unknown user")
	}

	switch user.Role {
	case models.UserRoleAdmin:
		return repositories.ScopeAll(), user, nil
	case models.UserRoleStationCommander:
		if user.StationID != nil {
			ids, err := userRepo.FindStationRecruiterIDs(*user.StationID)
			if err != nil {
				return repositories.VisibilityScope{}, nil, apperrors.InternalError(err)
			}
			return repositories.ScopeRecruiters(ids...), user, nil
		}
		return repositories.ScopeRecruiters(user.ID), user, nil
	default:
		return repositories.ScopeRecruiters(user.ID), user, nil
	}
}

// scopeAllows reports whether a record assigned to recruiterID is
// visible under the scope. Unassigned records are admin-only.
func scopeAllows(scope repositories.VisibilityScope, recruiterID *string) bool {
	if scope.All {
		return true
	}
	if recruiterID == nil {
		return false
	}
	for _, id := range scope.RecruiterIDs {
		if id == *recruiterID {
			return true
		}
	}
	return false
}
