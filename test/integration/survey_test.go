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

func TestSubmitSurvey_PublicWithValidQR(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, recruiter := helpers.CreateAndLoginRecruiter(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/surveys", "", map[string]interface{}{
		"recruiterQrCode": recruiter.QRCode,
		"name":            "Street Contact",
		"rating":          5,
		"feedback":        "recruiter answered every question",
		"scanLocation":    "Eastland Mall",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)

	// The owning recruiter sees it under /surveys/my.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/surveys/my", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Responses []struct {
			Name   string `json:"name"`
			Rating *int   `json:"rating"`
		} `json:"responses"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Street Contact", list.Responses[0].Name)
	require.NotNil(t, list.Responses[0].Rating)
	assert.Equal(t, 5, *list.Responses[0].Rating)
}

func TestSubmitSurvey_UnknownQRRejected(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/surveys", "", map[string]interface{}{
		"recruiterQrCode": "no-such-code",
		"name":            "Lost Visitor",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var count int64
	ts.DB.Model(&models.QrSurveyResponse{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSurveysMy_OnlyOwnCode(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	tokenA, recruiterA := helpers.CreateAndLoginRecruiter(t, ts)
	_, recruiterB := helpers.CreateAndLoginRecruiter(t, ts)

	require.NoError(t, ts.DB.Create(&models.QrSurveyResponse{
		RecruiterQRCode: recruiterA.QRCode, Name: "For A",
	}).Error)
	require.NoError(t, ts.DB.Create(&models.QrSurveyResponse{
		RecruiterQRCode: recruiterB.QRCode, Name: "For B",
	}).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/surveys/my", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, 1, list.Total)
	assert.Contains(t, bodyStr, "For A")
	assert.NotContains(t, bodyStr, "For B")
}
