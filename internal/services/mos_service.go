package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"recruittrack/internal/llm"
	"recruittrack/internal/logger"
	"recruittrack/internal/repositories"
	"recruittrack/internal/services/dto"
	"recruittrack/pkg/apperrors"
)

type MOSService interface {
	ListMOS() (*dto.MOSListResponse, error)
	// SuggestMOS asks the language model for matching MOS codes, falling
	// back to keyword matching when the model is unavailable or returns
	// garbage. Suggestions are persisted on the recruit when RecruitID
	// is set.
	SuggestMOS(ctx context.Context, req *dto.SuggestMOSRequest) (*dto.SuggestMOSResponse, error)
}

type MOSServiceImpl struct {
	mosRepo     repositories.MOSRepository
	recruitRepo repositories.RecruitRepository
	client      llm.Client
}

func NewMOSService(mosRepo repositories.MOSRepository, recruitRepo repositories.RecruitRepository, client llm.Client) MOSService {
	return &MOSServiceImpl{mosRepo: mosRepo, recruitRepo: recruitRepo, client: client}
}

func (s *MOSServiceImpl) ListMOS() (*dto.MOSListResponse, error) {
	entries, err := s.mosRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MOSListResponse{MOS: make([]dto.MOSEntry, 0, len(entries))}
	for _, e := range entries {
		resp.MOS = append(resp.MOS, dto.MOSEntry{
			Code:       e.Code,
			Title:      e.Title,
			Category:   e.Category,
			MinGTScore: e.MinGTScore,
		})
	}
	return resp, nil
}

const mosSystemPrompt = "You are a US Army career counselor. Given a recruit's interests, " +
	"respond with ONLY a JSON array of 2-4 MOS codes that fit, for example [\"11B\",\"68W\"]. " +
	"No prose, no markdown."

func (s *MOSServiceImpl) SuggestMOS(ctx context.Context, req *dto.SuggestMOSRequest) (*dto.SuggestMOSResponse, error) {
	codes, source := s.suggestCodes(ctx, req)

	entries, err := s.resolveEntries(codes, req.GTScore)
	if err != nil {
		return nil, err
	}

	if req.RecruitID != "" && len(entries) > 0 {
		stored := make([]string, 0, len(entries))
		for _, e := range entries {
			stored = append(stored, e.Code)
		}
		data, _ := json.Marshal(stored)
		if err := s.recruitRepo.UpdateRecruitFields(req.RecruitID, map[string]interface{}{
			"suggested_mos": string(data),
		}); err != nil && !apperrors.Is(err, repositories.ErrRecruitNotFound) {
			logger.CtxWarn(ctx, "failed to persist MOS suggestions", "error", err, "recruit_id", req.RecruitID)
		}
	}

	return &dto.SuggestMOSResponse{Suggestions: entries, Source: source}, nil
}

func (s *MOSServiceImpl) suggestCodes(ctx context.Context, req *dto.SuggestMOSRequest) ([]string, string) {
	if s.client.Enabled() {
		prompt := fmt.Sprintf("Interests: %s", req.Interests)
		if req.GTScore != nil {
			prompt += fmt.Sprintf("\nGT score: %d", *req.GTScore)
		}

		raw, err := s.client.Complete(ctx, mosSystemPrompt, prompt)
		if err == nil {
			if codes := extractMOSCodes(raw); len(codes) > 0 {
				return codes, "ai"
			}
			logger.CtxWarn(ctx, "model output had no usable MOS codes, using keyword fallback")
		} else {
			logger.CtxWarn(ctx, "MOS suggestion model call failed, using keyword fallback", "error", err)
		}
	}
	return KeywordMOSCodes(req.Interests), "keyword"
}

func (s *MOSServiceImpl) resolveEntries(codes []string, gtScore *int) ([]dto.MOSEntry, error) {
	entries := make([]dto.MOSEntry, 0, len(codes))
	for _, code := range codes {
		mos, err := s.mosRepo.FindByCode(code)
		if err != nil {
			if apperrors.Is(err, repositories.ErrMOSNotFound) {
				continue
			}
			return nil, apperrors.InternalError(err)
		}
		if gtScore != nil && mos.MinGTScore > 0 && *gtScore < mos.MinGTScore {
			continue
		}
		entries = append(entries, dto.MOSEntry{
			Code:       mos.Code,
			Title:      mos.Title,
			Category:   mos.Category,
			MinGTScore: mos.MinGTScore,
		})
	}
	return entries, nil
}

// mosArrayPattern pulls a JSON array out of a chatty model response.
var mosArrayPattern = regexp.MustCompile(`\[[^\[\]]*\]`)

// extractMOSCodes parses model output into MOS codes, tolerating prose
// around the JSON array.
func extractMOSCodes(raw string) []string {
	match := mosArrayPattern.FindString(raw)
	if match == "" {
		return nil
	}

	var codes []string
	if err := json.Unmarshal([]byte(match), &codes); err != nil {
		return nil
	}

	valid := codes[:0]
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			valid = append(valid, c)
		}
	}
	return valid
}

// Keyword fallback table, matched against the recruit's interests.
var mosKeywords = []struct {
	keyword string
	codes   []string
}{
	{"infantry", []string{"11B", "11C"}},
	{"combat", []string{"11B", "19D", "13B"}},
	{"medical", []string{"68W", "68X"}},
	{"tech", []string{"25B", "17C", "35T"}},
	{"computer", []string{"25B", "17C", "35T"}},
	{"cyber", []string{"17C", "25D"}},
	{"intelligence", []string{"35F", "35M", "35N"}},
	{"engineer", []string{"12B", "12N", "12W"}},
	{"mechanic", []string{"91B", "91D", "91S"}},
	{"aviation", []string{"15T", "15U", "15Y"}},
	{"language", []string{"09L", "35P"}},
	{"translator", []string{"09L", "35P"}},
	{"logistics", []string{"88M", "92A", "92Y"}},
	{"supply", []string{"92A", "92Y"}},
	{"admin", []string{"42A", "25B"}},
}

// KeywordMOSCodes matches interests against the keyword table,
// deduplicating while keeping table order.
func KeywordMOSCodes(interests string) []string {
	lower := strings.ToLower(interests)

	seen := make(map[string]bool)
	var codes []string
	for _, kw := range mosKeywords {
		if !strings.Contains(lower, kw.keyword) {
			continue
		}
		for _, code := range kw.codes {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}

	if len(codes) == 0 {
		// Broadly accessible defaults when nothing matches.
		codes = []string{"11B", "88M", "92A"}
	}
	return codes
}
