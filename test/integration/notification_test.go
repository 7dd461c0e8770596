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

func seedNotification(t *testing.T, ts *helpers.TestServer, userID, title string) *models.Notification {
	t.Helper()
	n := &models.Notification{
		UserID:  userID,
		Type:    models.NotificationTypeStatusChange,
		Title:   title,
		Message: "status moved",
	}
	require.NoError(t, ts.DB.Create(n).Error)
	return n
}

func TestNotifications_ListAndUnreadCount(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)
	_, other := helpers.CreateAndLoginRecruiter(t, ts)

	seedNotification(t, ts, user.ID, "first")
	seedNotification(t, ts, user.ID, "second")
	seedNotification(t, ts, other.ID, "not yours")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Notifications []struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			IsRead bool   `json:"isRead"`
		} `json:"notifications"`
		Total       int64 `json:"total"`
		UnreadCount int64 `json:"unreadCount"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.EqualValues(t, 2, list.Total, "Only the caller's notifications are listed")
	assert.EqualValues(t, 2, list.UnreadCount)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"count":2}`, bodyStr)
}

func TestNotifications_MarkReadFlow(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)
	otherToken, _ := helpers.CreateAndLoginRecruiter(t, ts)

	first := seedNotification(t, ts, user.ID, "first")
	seedNotification(t, ts, user.ID, "second")

	// Someone else cannot touch my notification.
	res, _ := ts.SendRequest(t, "PATCH", "/api/v1/notifications/"+first.ID+"/read", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/notifications/"+first.ID+"/read", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stored models.Notification
	require.NoError(t, ts.DB.First(&stored, "id = ?", first.ID).Error)
	assert.True(t, stored.IsRead)
	assert.NotNil(t, stored.ReadAt)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"count":1}`, bodyStr)

	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	_, bodyStr = ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", token, nil)
	assert.JSONEq(t, `{"count":0}`, bodyStr)
}

func TestNotifications_Delete(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)

	n := seedNotification(t, ts, user.ID, "expendable")

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+n.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+n.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNotifications_ClearAll(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)
	_, other := helpers.CreateAndLoginRecruiter(t, ts)

	seedNotification(t, ts, user.ID, "one")
	seedNotification(t, ts, user.ID, "two")
	kept := seedNotification(t, ts, other.ID, "someone else's")

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/notifications", token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	// Clearing only touches the caller's rows.
	require.NoError(t, ts.DB.First(&models.Notification{}, "id = ?", kept.ID).Error)
}

func TestNotifications_UnreadOnlyFilter(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginRecruiter(t, ts)

	read := seedNotification(t, ts, user.ID, "already read")
	require.NoError(t, ts.DB.Model(read).Updates(map[string]interface{}{"is_read": true}).Error)
	seedNotification(t, ts, user.ID, "still unread")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications?unread_only=true", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.EqualValues(t, 1, list.Total)
}
