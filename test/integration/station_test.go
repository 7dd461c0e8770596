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

// TestStationCommanderScope checks that a commander sees the records of
// every recruiter assigned to their station, and nothing beyond it.
func TestStationCommanderScope(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	station := &models.Station{Name: "Columbus Station", ZipCode: "31901"}
	require.NoError(t, ts.DB.Create(station).Error)
	elsewhere := &models.Station{Name: "Phenix City Station", ZipCode: "36867"}
	require.NoError(t, ts.DB.Create(elsewhere).Error)

	commanderToken, commander := helpers.CreateAndLoginUser(t, ts, "sc_columbus", "password123", models.UserRoleStationCommander)
	_, member := helpers.CreateAndLoginRecruiter(t, ts)
	_, outsider := helpers.CreateAndLoginRecruiter(t, ts)

	require.NoError(t, ts.DB.Model(commander).Update("station_id", station.ID).Error)
	require.NoError(t, ts.DB.Model(member).Update("station_id", station.ID).Error)
	require.NoError(t, ts.DB.Model(outsider).Update("station_id", elsewhere.ID).Error)

	helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Own", RecruiterID: &commander.ID})
	memberRecruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Member", RecruiterID: &member.ID})
	helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Outside", RecruiterID: &outsider.ID})
	helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Unassigned"})

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/recruits", commanderToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Recruits []struct {
			FirstName string `json:"firstName"`
		} `json:"recruits"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.EqualValues(t, 2, list.Total, "Own record plus the station member's")

	names := make(map[string]bool)
	for _, r := range list.Recruits {
		names[r.FirstName] = true
	}
	assert.True(t, names["Own"])
	assert.True(t, names["Member"])
	assert.False(t, names["Outside"])
	assert.False(t, names["Unassigned"], "Unassigned records stay admin-only")

	// The commander can open a station member's record directly.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/recruits/"+memberRecruit.ID, commanderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestStationCommanderScope_NoStation falls back to own records only.
func TestStationCommanderScope_NoStation(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, commander := helpers.CreateAndLoginUser(t, ts, "sc_unassigned", "password123", models.UserRoleStationCommander)
	_, other := helpers.CreateAndLoginRecruiter(t, ts)

	helpers.CreateRecruit(t, ts.DB, &models.Recruit{RecruiterID: &commander.ID})
	helpers.CreateRecruit(t, ts.DB, &models.Recruit{RecruiterID: &other.ID})

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/recruits", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.EqualValues(t, 1, list.Total)
}
