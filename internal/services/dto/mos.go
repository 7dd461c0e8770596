package dto

type SuggestMOSRequest struct {
	Interests string `json:"interests" validate:"required,max=1000"`
	GTScore   *int   `json:"gtScore" validate:"omitempty,min=0,max=200"`
	RecruitID string `json:"recruitId" validate:"omitempty,uuid"`
}

type MOSEntry struct {
	Code       string `json:"code"`
	Title      string `json:"title"`
	Category   string `json:"category,omitempty"`
	MinGTScore int    `json:"minGtScore,omitempty"`
}

// SuggestMOSResponse lists suggested MOS codes. Source is "ai" when the
// language model produced them and "keyword" for the local fallback.
type SuggestMOSResponse struct {
	Suggestions []MOSEntry `json:"suggestions"`
	Source      string     `json:"source"`
}

type MOSListResponse struct {
	MOS []MOSEntry `json:"mos"`
}
