package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"recruittrack/internal/models"
	"recruittrack/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suggestionsJSON struct {
	Suggestions []struct {
		Code       string `json:"code"`
		Title      string `json:"title"`
		MinGTScore int    `json:"minGtScore"`
	} `json:"suggestions"`
	Source string `json:"source"`
}

func TestListMOS_SeededCatalog(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	// The catalog endpoint is public.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/mos", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		MOS []struct {
			Code string `json:"code"`
		} `json:"mos"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, len(models.MOSCatalog()), len(list.MOS), "Catalog is seeded at startup")

	codes := make(map[string]bool, len(list.MOS))
	for _, m := range list.MOS {
		codes[m.Code] = true
	}
	assert.True(t, codes["11B"])
	assert.True(t, codes["68W"])
	assert.True(t, codes["17C"])
}

// TestSuggestMOS_KeywordFallback exercises the suggestion path without an
// API key, where the local keyword table answers.
func TestSuggestMOS_KeywordFallback(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginRecruiter(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/mos/suggest", token, map[string]interface{}{
		"interests": "I like computers and cyber stuff",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var resp suggestionsJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, "keyword", resp.Source)

	got := make(map[string]bool)
	for _, s := range resp.Suggestions {
		got[s.Code] = true
	}
	assert.True(t, got["25B"], "computer keyword")
	assert.True(t, got["17C"], "cyber keyword")
}

func TestSuggestMOS_GTScoreFilter(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginRecruiter(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/mos/suggest", token, map[string]interface{}{
		"interests": "computers",
		"gtScore":   100,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp suggestionsJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))

	for _, s := range resp.Suggestions {
		assert.LessOrEqual(t, s.MinGTScore, 100, "%s exceeds the candidate's GT score", s.Code)
		assert.NotEqual(t, "17C", s.Code, "17C needs GT 110")
	}
}

func TestSuggestMOS_DefaultsAndPersistence(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)
	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{RecruiterID: &user.ID})

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/mos/suggest", token, map[string]interface{}{
		"interests": "nothing in the table matches this",
		"recruitId": recruit.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp suggestionsJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	require.Len(t, resp.Suggestions, 3, "Unmatched interests fall back to the broad defaults")
	assert.Equal(t, "11B", resp.Suggestions[0].Code)

	// The suggestion set is stored on the recruit.
	var stored models.Recruit
	require.NoError(t, ts.DB.First(&stored, "id = ?", recruit.ID).Error)
	var storedCodes []string
	require.NoError(t, json.Unmarshal(stored.SuggestedMOS, &storedCodes))
	assert.Equal(t, []string{"11B", "88M", "92A"}, storedCodes)
}
