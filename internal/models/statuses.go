package models

type UserRole string
type RecruitStatus string
type RecruitSource string
type Component string
type Availability string
type RequestStatus string
type SorbStage string

const (
	UserRoleRecruiter               UserRole = "recruiter"
	UserRoleStationCommander        UserRole = "station_commander"
	UserRolePendingStationCommander UserRole = "pending_station_commander"
	UserRoleAdmin                   UserRole = "admin"
)

// Canonical recruit pipeline statuses. The two legacy UI vocabularies
// (pending/reviewing/approved/rejected and pending/contacted/qualified/
// disqualified) are accepted as write aliases and normalized before
// storage, so a record set through one surface always matches the other
// surface's filters.
const (
	RecruitStatusPending      RecruitStatus = "pending"
	RecruitStatusInReview     RecruitStatus = "in_review"
	RecruitStatusQualified    RecruitStatus = "qualified"
	RecruitStatusDisqualified RecruitStatus = "disqualified"
)

const (
	SourceDirect RecruitSource = "direct"
	SourceQRCode RecruitSource = "qr_code"
)

const (
	ComponentActive  Component = "active"
	ComponentReserve Component = "reserve"
)

const (
	AvailabilityImmediate Availability = "immediate"
	AvailabilityOneMonth  Availability = "1_month"
	AvailabilityThreeMo   Availability = "3_months"
	AvailabilitySixMo     Availability = "6_months"
	AvailabilityFlexible  Availability = "flexible"
)

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// SORB lead pipeline: an independent six-stage funnel plus the declined
// off-ramp. Stage order is fixed for funnel rendering.
const (
	SorbStageProspect    SorbStage = "prospect"
	SorbStageScreening   SorbStage = "screening"
	SorbStageRecommended SorbStage = "recommended"
	SorbStagePreparing   SorbStage = "preparing"
	SorbStageContracting SorbStage = "contracting"
	SorbStageContracted  SorbStage = "contracted"
	SorbStageDeclined    SorbStage = "declined"
)

var recruitStatusAliases = map[string]RecruitStatus{
	"pending":      RecruitStatusPending,
	"reviewing":    RecruitStatusInReview,
	"contacted":    RecruitStatusInReview,
	"in_review":    RecruitStatusInReview,
	"approved":     RecruitStatusQualified,
	"qualified":    RecruitStatusQualified,
	"rejected":     RecruitStatusDisqualified,
	"disqualified": RecruitStatusDisqualified,
}

// NormalizeRecruitStatus maps any accepted surface vocabulary onto the
// canonical enum. ok is false for unknown values.
func NormalizeRecruitStatus(raw string) (RecruitStatus, bool) {
	s, ok := recruitStatusAliases[raw]
	return s, ok
}

// DashboardLabel renders the canonical status in the dashboard vocabulary.
func (s RecruitStatus) DashboardLabel() string {
	switch s {
	case RecruitStatusInReview:
		return "reviewing"
	case RecruitStatusQualified:
		return "approved"
	case RecruitStatusDisqualified:
		return "rejected"
	default:
		return "pending"
	}
}

// DetailLabel renders the canonical status in the detail-page vocabulary.
func (s RecruitStatus) DetailLabel() string {
	switch s {
	case RecruitStatusInReview:
		return "contacted"
	case RecruitStatusQualified:
		return "qualified"
	case RecruitStatusDisqualified:
		return "disqualified"
	default:
		return "pending"
	}
}

// RecruitStatuses lists the canonical values in display order.
func RecruitStatuses() []RecruitStatus {
	return []RecruitStatus{
		RecruitStatusPending,
		RecruitStatusInReview,
		RecruitStatusQualified,
		RecruitStatusDisqualified,
	}
}

// RecruitSources lists the intake sources.
func RecruitSources() []RecruitSource {
	return []RecruitSource{SourceDirect, SourceQRCode}
}

// SorbStages lists the funnel stages in fixed order, declined last.
func SorbStages() []SorbStage {
	return []SorbStage{
		SorbStageProspect,
		SorbStageScreening,
		SorbStageRecommended,
		SorbStagePreparing,
		SorbStageContracting,
		SorbStageContracted,
		SorbStageDeclined,
	}
}

// Legacy SORB statuses from the old tracker map onto the funnel by the
// stage each one occupied.
var sorbStageAliases = map[string]SorbStage{
	"prospect":    SorbStageProspect,
	"pending":     SorbStageProspect,
	"attempted":   SorbStageProspect,
	"screening":   SorbStageScreening,
	"contacted":   SorbStageScreening,
	"interested":  SorbStageScreening,
	"recommended": SorbStageRecommended,
	"scheduled":   SorbStageRecommended,
	"preparing":   SorbStagePreparing,
	"qualified":   SorbStagePreparing,
	"contracting": SorbStageContracting,
	"contracted":  SorbStageContracted,
	"declined":    SorbStageDeclined,
}

// NormalizeSorbStage maps a raw stage value (including legacy statuses)
// onto the canonical funnel stage.
func NormalizeSorbStage(raw string) (SorbStage, bool) {
	s, ok := sorbStageAliases[raw]
	return s, ok
}
