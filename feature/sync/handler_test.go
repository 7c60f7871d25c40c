package sync_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"subscription-sync/core/database"
	"subscription-sync/core/gateway"
	gatewaymocks "subscription-sync/core/gateway/mocks"
	"subscription-sync/core/transient"
	syncfeature "subscription-sync/feature/sync"
	"subscription-sync/feature/sync/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *gatewaymocks.Client) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Subscription{},
		&models.SubscriptionNote{},
		&models.SyncOption{},
	))

	expiration := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	for i := 0; i < 12; i++ {
		id := int64(301 + i)
		require.NoError(t, db.Create(&models.Subscription{
			ID:         id,
			ProfileID:  fmt.Sprintf("sub_%d", id),
			Gateway:    "stripe",
			Status:     "expired",
			Expiration: expiration,
		}).Error)
	}

	gw := new(gatewaymocks.Client)
	periodEnd := expiration.Add(-syncfeature.GracePeriod).Unix()
	gw.On("RetrieveSubscription", mock.Anything, mock.Anything).
		Return(&gateway.Subscription{Status: "incomplete_expired", CurrentPeriodEnd: periodEnd}, nil)

	cfg := syncfeature.Config{
		LogsDir:           t.TempDir(),
		ChunkSize:         10,
		SessionTTLMinutes: 60,
	}
	feature := syncfeature.NewFeature(db, gw, transient.NewMemoryStore(), nil, zap.NewNop(), cfg)
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, gw
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	return resp.StatusCode, decoded
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	return resp.StatusCode, decoded
}

func TestSyncEndpointsFullLoop(t *testing.T) {
	app, _ := newTestApp(t)

	// Initialize a dry-run session.
	status, body := postJSON(t, app, "/sync/initialize", map[string]any{
		"dry_run": true,
		"mode":    "expired_future",
	})
	require.Equal(t, 200, status)
	assert.Equal(t, float64(10), body["chunk_size"])
	logFile, _ := body["log_file"].(string)
	assert.Contains(t, logFile, "sync-")

	// Count reflects the frozen list.
	status, body = getJSON(t, app, "/sync/count")
	require.Equal(t, 200, status)
	assert.Equal(t, float64(12), body["total"])

	// Drive the chunk loop to completion the way the admin client does.
	processed := 0
	for offset := 0; ; offset += 10 {
		status, body = postJSON(t, app, "/sync/chunk", map[string]any{
			"offset":  offset,
			"dry_run": true,
		})
		require.Equal(t, 200, status)
		n := int(body["processed"].(float64))
		if n == 0 {
			break
		}
		processed += n
		assert.Equal(t, body["processed"], body["succeeded"])
	}
	assert.Equal(t, 12, processed)

	// The audit log is downloadable for the active session.
	status, body = getJSON(t, app, "/sync/log")
	require.Equal(t, 200, status)
	assert.Equal(t, logFile, body["filename"])
	log, _ := body["log"].(string)
	assert.Contains(t, log, "=== Subscription Sync Log ===")
	assert.Contains(t, log, "[DRY RUN]")
}

func TestCountWithoutSessionIsZero(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := getJSON(t, app, "/sync/count")
	require.Equal(t, 200, status)
	assert.Equal(t, float64(0), body["total"])
}

func TestDownloadLogWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := getJSON(t, app, "/sync/log")
	assert.Equal(t, 404, status)
	assert.Equal(t, "no log file found", body["error"])
}

func TestInitializeRejectsMalformedBody(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/sync/initialize", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestArchiveEndpointsDisabledWithoutStorage(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := getJSON(t, app, "/sync/archive")
	assert.Equal(t, 404, status)
	assert.Equal(t, "log archiving is disabled", body["error"])

	status, _ = getJSON(t, app, "/sync/archive/sync-a.log")
	assert.Equal(t, 404, status)
}

func TestStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := getJSON(t, app, "/sync/stats?mode=expired_future")
	require.Equal(t, 200, status)
	assert.Equal(t, float64(12), body["total"])
	assert.NotNil(t, body["by_days_future"])
}
