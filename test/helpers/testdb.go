package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"recruittrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password when a raw one is supplied
// in the PasswordHash field.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	if user.Role == "" {
		user.Role = models.UserRoleRecruiter
	}
	if user.QRCode == "" {
		user.QRCode = uuid.NewString()
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser creates a user directly in the database and logs in
// through the API, returning the JWT and the stored user.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@test.local", username),
		PasswordHash: password, // raw, CreateUser hashes it
		FullName:     "SSG Test " + username,
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	require.NoError(t, err, "Creating the test user should not fail")

	loginBody := map[string]interface{}{
		"username": username,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err, "Failed to parse login JSON")
	require.NotEmpty(t, loginResponse.Token, "Token must not be empty")

	return loginResponse.Token, user
}

// CreateAndLoginRecruiter creates a recruiter with a unique username.
func CreateAndLoginRecruiter(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	username := fmt.Sprintf("recruiter_%d", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, username, "password123", models.UserRoleRecruiter)
}

// CreateAndLoginAdmin creates an admin with a unique username.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	username := fmt.Sprintf("admin_%d", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, username, "password123", models.UserRoleAdmin)
}

// CreateRecruit inserts a recruit with sensible defaults for empty fields.
func CreateRecruit(t *testing.T, db *gorm.DB, recruit *models.Recruit) *models.Recruit {
	t.Helper()

	if recruit.FirstName == "" {
		recruit.FirstName = "John"
	}
	if recruit.LastName == "" {
		recruit.LastName = "Doe"
	}
	if recruit.Email == "" {
		recruit.Email = fmt.Sprintf("recruit_%s@test.local", uuid.NewString()[:8])
	}
	if recruit.DateOfBirth.IsZero() {
		recruit.DateOfBirth = time.Now().AddDate(-25, 0, 0)
	}
	if recruit.Status == "" {
		recruit.Status = models.RecruitStatusPending
	}
	if recruit.Source == "" {
		recruit.Source = models.SourceDirect
	}

	result := db.Create(recruit)
	assert.NoError(t, result.Error, "Creating the test recruit should not fail")
	return recruit
}

// CreateSorbLead inserts a special-operations lead with defaults.
func CreateSorbLead(t *testing.T, db *gorm.DB, lead *models.SorbLead) *models.SorbLead {
	t.Helper()

	if lead.FirstName == "" {
		lead.FirstName = "Mike"
	}
	if lead.LastName == "" {
		lead.LastName = "Rowe"
	}
	if lead.Stage == "" {
		lead.Stage = models.SorbStageProspect
	}

	result := db.Create(lead)
	assert.NoError(t, result.Error, "Creating the test lead should not fail")
	return lead
}

// IntPtr and friends keep test fixtures readable.
func IntPtr(v int) *int              { return &v }
func StrPtr(v string) *string        { return &v }
func TimePtr(v time.Time) *time.Time { return &v }
