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

// TestAuthFlow walks through register, login and /auth/me.
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	registerBody := map[string]interface{}{
		"username": "sgt_miller",
		"email":    "miller@test.local",
		"password": "super_password123",
		"fullName": "SGT Dan Miller",
		"rank":     "SGT",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, "Registration should succeed. Response: "+regBodyStr)
	assert.Contains(t, regBodyStr, "sgt_miller")

	loginBody := map[string]interface{}{
		"username": "sgt_miller",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, logRes.StatusCode, "Login should succeed. Response: "+logBodyStr)

	var login struct {
		Token string `json:"token"`
		User  struct {
			Role   string `json:"role"`
			QRCode string `json:"qrCode"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "recruiter", login.User.Role)
	assert.NotEmpty(t, login.User.QRCode, "Every recruiter gets a QR code at registration")

	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", login.Token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, "miller@test.local")
}

// TestLogin_ByEmail checks that the login identifier may also be the email.
func TestLogin_ByEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	_, user := helpers.CreateAndLoginUser(t, ts, "email_login", "password123", models.UserRoleRecruiter)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"username": user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Email login should succeed. Response: "+bodyStr)
	assert.Contains(t, bodyStr, "token")
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	helpers.CreateAndLoginUser(t, ts, "wrong_pass", "password123", models.UserRoleRecruiter)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"username": "wrong_pass",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Username:     "taken",
		Email:        "taken@test.local",
		PasswordHash: "password123",
		FullName:     "First One",
	})
	require.NoError(t, err)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"username": "taken",
		"email":    "other@test.local",
		"password": "password123",
		"fullName": "Second One",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

// TestRegister_StationCommanderRequest verifies that asking for the
// station commander role files an approval request instead of granting it.
func TestRegister_StationCommanderRequest(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"username": "wannabe_sc",
		"email":    "wannabe@test.local",
		"password": "password123",
		"fullName": "SFC Amari Jones",
		"role":     "station_commander",
		"station":  "Fort Bragg Station",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+bodyStr)
	assert.Contains(t, bodyStr, string(models.UserRolePendingStationCommander))

	var user models.User
	require.NoError(t, ts.DB.Where("username = ?", "wannabe_sc").First(&user).Error)
	assert.Equal(t, models.UserRolePendingStationCommander, user.Role)
	assert.NotNil(t, user.StationID, "Registering with a station name should attach the user to it")

	var count int64
	ts.DB.Model(&models.StationCommanderRequest{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count, "A pending promotion request should be on file")
}
