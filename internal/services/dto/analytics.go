package dto

// RecruiterStats is the dashboard summary for the caller's visibility
// scope. Status counts use the dashboard vocabulary; every status is
// present even when zero.
type RecruiterStats struct {
	TotalRecruits    int64            `json:"totalRecruits"`
	StatusCounts     map[string]int64 `json:"statusCounts"`
	SourceCounts     map[string]int64 `json:"sourceCounts"`
	NewThisWeek      int64            `json:"newThisWeek"`
	NewThisMonth     int64            `json:"newThisMonth"`
	UpcomingShippers int64            `json:"upcomingShippers"`
	SurveyResponses  int64            `json:"surveyResponses"`
}
