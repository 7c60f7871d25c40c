package sync

import (
	"context"
	"fmt"
	"time"

	"subscription-sync/feature/sync/models"
)

// futureRanges buckets expired-with-future-date records by how many days in
// the future their expiration lies. The open-ended bucket caps at 100 years.
var futureRanges = []struct {
	label string
	from  int
	to    int
}{
	{"0-30", 0, 30},
	{"31-60", 31, 60},
	{"61-90", 61, 90},
	{"90+", 91, 36500},
}

// Statistics reports how many subscriptions a mode currently matches.
// Unlike the session count this is a live query, intended for the admin
// landing page before a session starts; results are cached briefly and
// protected against stampedes with singleflight.
func (s *Service) Statistics(ctx context.Context, mode Mode, modifiedAfter string) (*models.Statistics, error) {
	if !dateFilterPattern.MatchString(modifiedAfter) {
		modifiedAfter = ""
	}
	key := fmt.Sprintf("stats|%s|%s", mode, modifiedAfter)

	if v, ok := s.statsCache.Get(key); ok {
		stats := v.(models.Statistics)
		return &stats, nil
	}

	v, err, _ := s.statsSF.Do(key, func() (any, error) {
		// Double-check after acquiring the singleflight lock.
		if v, ok := s.statsCache.Get(key); ok {
			return v, nil
		}

		stats, err := s.computeStatistics(ctx, mode, modifiedAfter)
		if err != nil {
			return nil, err
		}

		ttl := time.Duration(s.cfg.StatsCacheSeconds) * time.Second
		if ttl > 0 {
			s.statsCache.Set(key, *stats, ttl)
		}
		return *stats, nil
	})
	if err != nil {
		return nil, err
	}

	stats := v.(models.Statistics)
	return &stats, nil
}

func (s *Service) computeStatistics(ctx context.Context, mode Mode, modifiedAfter string) (*models.Statistics, error) {
	now := time.Now().UTC()

	var total int64
	q := mode.Scope(s.db.WithContext(ctx).Model(&models.Subscription{}), now, modifiedAfter)
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	stats := &models.Statistics{
		Total:        int(total),
		ByDaysFuture: map[string]int{},
		LastRun:      s.lastRun(ctx),
	}
	for _, r := range futureRanges {
		stats.ByDaysFuture[r.label] = 0
	}

	// The day breakdown only makes sense for the expired-future mode.
	if mode != ModeExpiredFuture || total == 0 {
		return stats, nil
	}

	for _, r := range futureRanges {
		start := now.AddDate(0, 0, r.from)
		end := now.AddDate(0, 0, r.to)

		var count int64
		q := mode.Scope(s.db.WithContext(ctx).Model(&models.Subscription{}), now, modifiedAfter).
			Where("expiration >= ?", start).
			Where("expiration <= ?", end)
		if err := q.Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count expiration range %s: %w", r.label, err)
		}
		stats.ByDaysFuture[r.label] = int(count)
	}

	return stats, nil
}
