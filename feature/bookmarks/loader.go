package bookmarks

import (
	"time"

	"bookmark-sync/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Bookmarks feature. A nil client disables snapshots.
func NewFeature(db *gorm.DB, identity IdentityResolver, client storage.Client, bucket, prefix string, timeout time.Duration, logger *zap.Logger) *Feature {
	svc := NewService(db, identity, client, bucket, prefix, logger)
	h := NewHandler(svc, timeout)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "bookmarks"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
