package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"recruittrack/internal/app"
	"recruittrack/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestServer wraps an httptest server together with the database it runs on.
// Every server gets its own in-memory sqlite database, so tests can run in
// parallel without stepping on each other's data.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

var dbSeq int64

// NewTestServer spins up a fully wired API server backed by a fresh database.
// SORB routes are mounted; use NewTestServerWithoutSORB to test the other mode.
func NewTestServer(t *testing.T) *TestServer {
	return newTestServer(t, true)
}

func NewTestServerWithoutSORB(t *testing.T) *TestServer {
	return newTestServer(t, false)
}

func newTestServer(t *testing.T, sorbEnabled bool) *TestServer {
	t.Helper()

	cfg := *config.GetConfig()
	cfg.SORB.Enabled = sorbEnabled

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database (%s): %v", dsn, err)
	}

	// sqlite tolerates a single writer; keep one connection so parallel
	// requests inside a test queue up instead of failing with a lock error.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get *sql.DB from GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := app.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(&cfg, db)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		sqlDB.Close()
	})

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

// ClearTables wipes all rows but keeps the schema and the seeded MOS catalog.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()

	tables := []string{
		"recruit_notes",
		"recruits",
		"notifications",
		"qr_survey_responses",
		"sorb_leads",
		"station_commander_requests",
		"users",
		"stations",
	}
	for _, table := range tables {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
}

// SendRequest sends a JSON request to the test server and returns the
// response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request JSON: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build HTTP request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
