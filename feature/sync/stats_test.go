package sync

import (
	"context"
	"testing"
	"time"

	"subscription-sync/feature/sync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsBucketsExpiredFuture(t *testing.T) {
	svc, db, _ := newTestService(t, 10)
	svc.cfg.StatsCacheSeconds = 0

	now := time.Now().UTC()
	seed := func(id int64, daysAhead int) {
		require.NoError(t, db.Create(&models.Subscription{
			ID:         id,
			ProfileID:  "sub_x",
			Gateway:    "stripe",
			Status:     "expired",
			Expiration: now.AddDate(0, 0, daysAhead),
		}).Error)
	}
	seed(1, 5)
	seed(2, 25)
	seed(3, 45)
	seed(4, 75)
	seed(5, 400)

	// Out of scope: wrong status.
	require.NoError(t, db.Create(&models.Subscription{
		ID: 6, ProfileID: "sub_x", Gateway: "stripe", Status: "active",
		Expiration: now.AddDate(0, 0, 10),
	}).Error)
	// Out of scope: empty profile ID.
	require.NoError(t, db.Create(&models.Subscription{
		ID: 7, Gateway: "stripe", Status: "expired",
		Expiration: now.AddDate(0, 0, 10),
	}).Error)

	stats, err := svc.Statistics(context.Background(), ModeExpiredFuture, "")
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.ByDaysFuture["0-30"])
	assert.Equal(t, 1, stats.ByDaysFuture["31-60"])
	assert.Equal(t, 1, stats.ByDaysFuture["61-90"])
	assert.Equal(t, 1, stats.ByDaysFuture["90+"])
	assert.Empty(t, stats.LastRun)
}

func TestStatisticsOtherModesSkipBreakdown(t *testing.T) {
	svc, db, _ := newTestService(t, 10)
	svc.cfg.StatsCacheSeconds = 0

	require.NoError(t, db.Create(&models.Subscription{
		ID: 1, ProfileID: "sub_a", Gateway: "stripe", Status: "failing",
	}).Error)
	require.NoError(t, db.Create(&models.Subscription{
		ID: 2, ProfileID: "sub_b", Gateway: "stripe", Status: "active",
	}).Error)

	stats, err := svc.Statistics(context.Background(), ModeFailing, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	for _, v := range stats.ByDaysFuture {
		assert.Zero(t, v)
	}

	stats, err = svc.Statistics(context.Background(), ModeAllActive, "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
}

func TestStatisticsDateFilter(t *testing.T) {
	svc, db, _ := newTestService(t, 10)
	svc.cfg.StatsCacheSeconds = 0

	require.NoError(t, db.Create(&models.Subscription{
		ID: 1, ProfileID: "sub_a", Gateway: "stripe", Status: "failing",
		DateModified: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, db.Create(&models.Subscription{
		ID: 2, ProfileID: "sub_b", Gateway: "stripe", Status: "failing",
		DateModified: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	}).Error)

	stats, err := svc.Statistics(context.Background(), ModeFailing, "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	// Malformed dates are discarded rather than rejected.
	stats, err = svc.Statistics(context.Background(), ModeFailing, "03/01/2026")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
}

func TestStatisticsAreCached(t *testing.T) {
	svc, db, _ := newTestService(t, 10)
	svc.cfg.StatsCacheSeconds = 60

	require.NoError(t, db.Create(&models.Subscription{
		ID: 1, ProfileID: "sub_a", Gateway: "stripe", Status: "failing",
	}).Error)

	stats, err := svc.Statistics(context.Background(), ModeFailing, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	// New rows do not show up until the cache entry expires.
	require.NoError(t, db.Create(&models.Subscription{
		ID: 2, ProfileID: "sub_b", Gateway: "stripe", Status: "failing",
	}).Error)

	stats, err = svc.Statistics(context.Background(), ModeFailing, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)

	// A different mode is a different cache key.
	stats, err = svc.Statistics(context.Background(), ModeAllActive, "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
}

func TestStatisticsIncludeLastRun(t *testing.T) {
	svc, db, _ := newTestService(t, 10)
	svc.cfg.StatsCacheSeconds = 0

	require.NoError(t, db.Create(&models.SyncOption{
		Name:  "sync_last_run",
		Value: "2026-08-30 12:00:00",
	}).Error)

	stats, err := svc.Statistics(context.Background(), ModeAllActive, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30 12:00:00", stats.LastRun)
}
