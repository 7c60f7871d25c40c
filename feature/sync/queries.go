package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subscription-sync/feature/sync/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lastRunOption is the options-table key for the last completed full live sync.
const lastRunOption = "sync_last_run"

// subscriptionIDs runs the one filtered query per session that freezes the
// identifier list. Chunk processing never calls this again.
func (s *Service) subscriptionIDs(ctx context.Context, mode Mode, modifiedAfter string) ([]int64, error) {
	ids := make([]int64, 0)
	q := mode.Scope(s.db.WithContext(ctx).Model(&models.Subscription{}), time.Now().UTC(), modifiedAfter)
	if err := q.Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to query subscription ids: %w", err)
	}
	return ids, nil
}

// fetchByIDs loads current record data for exactly the given identifiers.
// Records deleted since the session froze its list are silently absent.
func (s *Service) fetchByIDs(ctx context.Context, ids []int64) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriptions: %w", err)
	}
	return subs, nil
}

// updateSubscription writes only the flagged fields of one record.
func (s *Service) updateSubscription(ctx context.Context, id int64, fields map[string]any) error {
	res := s.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update subscription %d: %w", id, res.Error)
	}
	return nil
}

// addNote appends an audit note to a subscription, mirroring the platform's
// own note mechanism.
func (s *Service) addNote(ctx context.Context, subscriptionID int64, note string) error {
	n := models.SubscriptionNote{
		SubscriptionID: subscriptionID,
		Note:           note,
	}
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return fmt.Errorf("failed to add subscription note: %w", err)
	}
	return nil
}

// lastRun returns the stored last-full-sync timestamp, empty if none.
func (s *Service) lastRun(ctx context.Context) string {
	var opt models.SyncOption
	err := s.db.WithContext(ctx).
		Where("option_name = ?", lastRunOption).
		First(&opt).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Failed to read last run option", zap.Error(err))
		}
		return ""
	}
	return opt.Value
}

// setLastRun upserts the last-full-sync timestamp.
func (s *Service) setLastRun(ctx context.Context, value string) error {
	opt := models.SyncOption{Name: lastRunOption, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&opt).Error
	if err != nil {
		return fmt.Errorf("failed to store last run option: %w", err)
	}
	return nil
}
