package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"recruittrack/internal/models"
	"recruittrack/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recruitJSON struct {
	ID                 string     `json:"id"`
	FirstName          string     `json:"firstName"`
	Age                int        `json:"age"`
	DateOfBirth        *time.Time `json:"dateOfBirth"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"statusLabel"`
	Source             string     `json:"source"`
	RecruiterID        *string    `json:"recruiterId"`
	GTScore            *int       `json:"gtScore"`
	PriorServiceBranch string     `json:"priorServiceBranch"`
	ShipDate           *time.Time `json:"shipDate"`
}

// bornYearsAgo yields a birth date a day past the given birthday, so
// the computed age is exactly years.
func bornYearsAgo(years int) time.Time {
	return time.Now().UTC().AddDate(-years, 0, -1)
}

func TestRecruitIntake_Anonymous(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/recruits", "", map[string]interface{}{
		"firstName":   "Jake",
		"lastName":    "Sully",
		"email":       "jake@test.local",
		"phone":       "+1-555-0101",
		"dateOfBirth": bornYearsAgo(21),
		"city":        "Columbus",
		"state":       "GA",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var recruit recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &recruit))
	assert.Equal(t, 21, recruit.Age, "Age is computed from the date of birth")
	assert.Equal(t, "pending", recruit.Status)
	assert.Equal(t, "direct", recruit.Source)
	assert.Nil(t, recruit.RecruiterID, "Anonymous submissions stay unassigned")
}

// TestRecruitIntake_QRAttribution checks that a valid recruiter QR code on
// the intake form assigns the recruit and notifies the code's owner.
func TestRecruitIntake_QRAttribution(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/recruits", "", map[string]interface{}{
		"firstName":       "Neytiri",
		"lastName":        "Sully",
		"email":           "neytiri@test.local",
		"phone":           "+1-555-0102",
		"dateOfBirth":     bornYearsAgo(19),
		"recruiterQrCode": recruiter.QRCode,
		"scanLocation":    "Westland Mall",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	var recruit recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &recruit))
	assert.Equal(t, "qr_code", recruit.Source)
	require.NotNil(t, recruit.RecruiterID)
	assert.Equal(t, recruiter.ID, *recruit.RecruiterID)

	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", recruiter.ID, models.NotificationTypeNewRecruit).
		Count(&count)
	assert.EqualValues(t, 1, count, "The attributed recruiter should be notified")
}

func TestRecruitIntake_UnknownQRCode(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/recruits", "", map[string]interface{}{
		"firstName":       "Norm",
		"lastName":        "Spellman",
		"email":           "norm@test.local",
		"phone":           "+1-555-0103",
		"dateOfBirth":     bornYearsAgo(25),
		"recruiterQrCode": "no-such-code",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "A bad QR code must not fail the submission")

	var recruit recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &recruit))
	assert.Equal(t, "direct", recruit.Source)
	assert.Nil(t, recruit.RecruiterID)
}

func TestRecruitIntake_AgeBounds(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	submit := func(dob time.Time) int {
		res, _ := ts.SendRequest(t, "POST", "/api/v1/recruits", "", map[string]interface{}{
			"firstName":   "Age",
			"lastName":    "Check",
			"email":       fmt.Sprintf("age%d@test.local", time.Now().UnixNano()),
			"phone":       "+1-555-0104",
			"dateOfBirth": dob,
		})
		return res.StatusCode
	}

	assert.Equal(t, http.StatusBadRequest, submit(bornYearsAgo(16)), "Below the enlistment window")
	assert.Equal(t, http.StatusBadRequest, submit(bornYearsAgo(43)), "Above the enlistment window")
	assert.Equal(t, http.StatusCreated, submit(bornYearsAgo(17)), "Lower bound is inclusive")
	assert.Equal(t, http.StatusCreated, submit(bornYearsAgo(42)), "Upper bound is inclusive")

	// A 17th birthday falling tomorrow still counts as 16 today.
	almostSeventeen := time.Now().UTC().AddDate(-17, 0, 1)
	assert.Equal(t, http.StatusBadRequest, submit(almostSeventeen))
}

// The form collects a birth date; age is never accepted from the
// client.
func TestRecruitIntake_RequiresDateOfBirth(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/recruits", "", map[string]interface{}{
		"firstName": "Trudy",
		"lastName":  "Chacon",
		"email":     "trudy@test.local",
		"phone":     "+1-555-0106",
		"age":       21,
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, "Response: "+bodyStr)

	var errResp struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &errResp))
	assert.Equal(t, "This field is required", errResp.Details["dateOfBirth"])
}

// TestRecruitIntake_PriorServiceConditional: branch and years are only
// required once the prior-service flag is set.
func TestRecruitIntake_PriorServiceConditional(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	submit := func(extra map[string]interface{}) (int, string) {
		body := map[string]interface{}{
			"firstName":   "Vet",
			"lastName":    "Check",
			"email":       fmt.Sprintf("vet%d@test.local", time.Now().UnixNano()),
			"phone":       "+1-555-0105",
			"dateOfBirth": bornYearsAgo(29),
		}
		for k, v := range extra {
			body[k] = v
		}
		res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/recruits", "", body)
		return res.StatusCode, bodyStr
	}

	status, bodyStr := submit(map[string]interface{}{"priorService": true})
	assert.Equal(t, http.StatusBadRequest, status, "Response: "+bodyStr)

	status, bodyStr = submit(map[string]interface{}{
		"priorService":       true,
		"priorServiceBranch": "Navy",
		"priorServiceYears":  4,
	})
	require.Equal(t, http.StatusCreated, status, "Response: "+bodyStr)

	var created recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, "Navy", created.PriorServiceBranch)

	status, _ = submit(nil)
	assert.Equal(t, http.StatusCreated, status, "No flag, no branch needed")
}

// TestListRecruits_Scoping verifies that recruiters only see their own
// records, while admins see everything including unassigned entries.
func TestListRecruits_Scoping(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	tokenA, userA := helpers.CreateAndLoginRecruiter(t, ts)
	tokenB, userB := helpers.CreateAndLoginRecruiter(t, ts)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	mine := helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Alpha", RecruiterID: &userA.ID})
	helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Bravo", RecruiterID: &userA.ID})
	helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Charlie", RecruiterID: &userB.ID})
	helpers.CreateRecruit(t, ts.DB, &models.Recruit{FirstName: "Delta"}) // unassigned

	var list struct {
		Recruits []recruitJSON `json:"recruits"`
		Total    int64         `json:"total"`
	}

	_, bodyStr := ts.SendRequest(t, "GET", "/api/v1/recruits", tokenA, nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.EqualValues(t, 2, list.Total, "Recruiter A sees only their own records")

	_, bodyStr = ts.SendRequest(t, "GET", "/api/v1/recruits", adminToken, nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.EqualValues(t, 4, list.Total, "Admin sees all records, including unassigned")

	// Search stays inside the caller's scope.
	_, bodyStr = ts.SendRequest(t, "GET", "/api/v1/recruits?search=alp", tokenA, nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.EqualValues(t, 1, list.Total)

	// Out-of-scope reads look like missing records, not forbidden ones.
	res, _ := ts.SendRequest(t, "GET", "/api/v1/recruits/"+mine.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListRecruits_StatusFilterVocabularies(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)

	helpers.CreateRecruit(t, ts.DB, &models.Recruit{
		FirstName: "Echo", RecruiterID: &user.ID, Status: models.RecruitStatusInReview,
	})
	helpers.CreateRecruit(t, ts.DB, &models.Recruit{
		FirstName: "Foxtrot", RecruiterID: &user.ID, Status: models.RecruitStatusPending,
	})

	var list struct {
		Total int64 `json:"total"`
	}

	// Both surface vocabularies address the same canonical status.
	for _, filter := range []string{"reviewing", "contacted", "in_review"} {
		_, bodyStr := ts.SendRequest(t, "GET", "/api/v1/recruits?status="+filter, token, nil)
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
		assert.EqualValues(t, 1, list.Total, "Filter %q should match the in-review record", filter)
	}

	res, _ := ts.SendRequest(t, "GET", "/api/v1/recruits?status=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateStatus_AliasNormalization(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)
	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{RecruiterID: &user.ID})

	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/v1/recruits/"+recruit.ID+"/status", token,
		map[string]interface{}{"status": "approved"})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var updated recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "qualified", updated.Status, "Dashboard vocabulary is stored canonically")
	assert.Equal(t, "qualified", updated.StatusLabel)

	res, bodyStr = ts.SendRequest(t, "PATCH", "/api/v1/recruits/"+recruit.ID+"/status", token,
		map[string]interface{}{"status": "contacted"})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "in_review", updated.Status)
	assert.Equal(t, "contacted", updated.StatusLabel)
}

// Demoting a shipped recruit wipes the shipping block; the ship date
// never outlives qualified status.
func TestUpdateStatus_LeavingQualifiedClearsShipDate(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)

	shipDate := nearFutureDate(30)
	component := models.ComponentActive
	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{
		RecruiterID: &user.ID,
		Status:      models.RecruitStatusQualified,
		ShipDate:    &shipDate,
		Component:   &component,
		ActualMOS:   "11B",
	})

	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/v1/recruits/"+recruit.ID+"/status", token,
		map[string]interface{}{"status": "rejected"})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var updated recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "disqualified", updated.Status)
	assert.Nil(t, updated.ShipDate)

	var stored models.Recruit
	require.NoError(t, ts.DB.First(&stored, "id = ?", recruit.ID).Error)
	assert.Nil(t, stored.ShipDate)
	assert.Nil(t, stored.Component)
	assert.Empty(t, stored.ActualMOS)
}

func TestUpdateStatus_QualifiedKeepsShipDate(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)

	shipDate := nearFutureDate(30)
	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{
		RecruiterID: &user.ID,
		Status:      models.RecruitStatusQualified,
		ShipDate:    &shipDate,
	})

	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/v1/recruits/"+recruit.ID+"/status", token,
		map[string]interface{}{"status": "qualified"})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var updated recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.NotNil(t, updated.ShipDate)
}

func TestUpdateRecruit_Partial(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)
	_, other := helpers.CreateAndLoginRecruiter(t, ts)
	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{RecruiterID: &user.ID})

	// recruiterId is not part of the update surface; a client that sends
	// it anyway gets it silently dropped and the owner stays put.
	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/v1/recruits/"+recruit.ID, token,
		map[string]interface{}{"gtScore": 112, "recruiterId": other.ID})
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+bodyStr)

	var updated recruitJSON
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	require.NotNil(t, updated.GTScore)
	assert.Equal(t, 112, *updated.GTScore)
	require.NotNil(t, updated.RecruiterID)
	assert.Equal(t, user.ID, *updated.RecruiterID)

	var stored models.Recruit
	require.NoError(t, ts.DB.First(&stored, "id = ?", recruit.ID).Error)
	require.NotNil(t, stored.RecruiterID)
	assert.Equal(t, user.ID, *stored.RecruiterID, "Assignment only happens at intake")
}

func TestRecruitNotes_AppendAndLegacyMigration(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)

	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{
		RecruiterID: &user.ID,
		LegacyNotes: `[{"note":"called, left voicemail","author":"u-900","authorName":"SSG Vasquez","timestamp":"2023-02-01T10:00:00Z"},{"note":"follow up Friday","author":"u-900","authorName":"SSG Vasquez","timestamp":"2023-02-03T16:20:00Z"}]`,
	})

	addRes, addBodyStr := ts.SendRequest(t, "PATCH", "/api/v1/recruits/"+recruit.ID+"/notes", token,
		map[string]interface{}{"note": "ASVAB scheduled"})
	require.Equal(t, http.StatusCreated, addRes.StatusCode, "Response: "+addBodyStr)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/recruits/"+recruit.ID+"/notes", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Notes []struct {
			Seq       int       `json:"seq"`
			Author    string    `json:"author"`
			Body      string    `json:"body"`
			CreatedAt time.Time `json:"createdAt"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	require.Len(t, payload.Notes, 3, "Two migrated legacy notes plus the new one")

	assert.Equal(t, 1, payload.Notes[0].Seq)
	assert.Equal(t, "SSG Vasquez", payload.Notes[0].Author)
	assert.Equal(t, "called, left voicemail", payload.Notes[0].Body)
	assert.Equal(t, 2023, payload.Notes[0].CreatedAt.Year(), "Migrated entries keep their recorded timestamp")
	assert.Equal(t, "follow up Friday", payload.Notes[1].Body)
	assert.Equal(t, 3, payload.Notes[2].Seq)
	assert.Equal(t, user.FullName, payload.Notes[2].Author)
	assert.Equal(t, "ASVAB scheduled", payload.Notes[2].Body)

	// Migration clears the legacy column so it never runs twice.
	var stored models.Recruit
	require.NoError(t, ts.DB.First(&stored, "id = ?", recruit.ID).Error)
	assert.Empty(t, stored.LegacyNotes)
}

func TestRecruitNotes_PlainTextLegacy(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)

	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{
		RecruiterID: &user.ID,
		LegacyNotes: "met at the county fair, very motivated",
	})

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/recruits/"+recruit.ID+"/notes", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Notes []struct {
			Author string `json:"author"`
			Body   string `json:"body"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	require.Len(t, payload.Notes, 1, "Non-JSON legacy notes become a single entry")
	assert.Equal(t, "Unknown", payload.Notes[0].Author)
	assert.Equal(t, "met at the county fair, very motivated", payload.Notes[0].Body)
}

func TestDeleteRecruit(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)
	recruit := helpers.CreateRecruit(t, ts.DB, &models.Recruit{RecruiterID: &user.ID})

	_, _ = ts.SendRequest(t, "PATCH", "/api/v1/recruits/"+recruit.ID+"/notes", token,
		map[string]interface{}{"note": "to be removed with the record"})

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/recruits/"+recruit.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/v1/recruits/"+recruit.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var noteCount int64
	ts.DB.Model(&models.RecruitNote{}).Where("recruit_id = ?", recruit.ID).Count(&noteCount)
	assert.EqualValues(t, 0, noteCount, "Notes are removed together with the recruit")
}
