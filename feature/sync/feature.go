package sync

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"subscription-sync/core/gateway"
	"subscription-sync/core/transient"
)

// Feature bundles the sync service for the feature loader.
type Feature struct {
	service *Service
}

// NewFeature creates the sync feature.
func NewFeature(db *gorm.DB, gw gateway.Client, store transient.Store, archiver *Archiver, logger *zap.Logger, cfg Config) *Feature {
	return &Feature{
		service: NewService(db, gw, store, archiver, logger, cfg),
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled reports whether the feature can run. The feature is useless
// without the platform database.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for the CLI command.
func (f *Feature) Service() *Service {
	return f.service
}
