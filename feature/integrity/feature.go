package integrity

import (
	"chroma-launcher/core/chroma"
	"chroma-launcher/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the integrity checks on the admin API.
type Feature struct {
	service *Service
}

// NewFeature creates the integrity feature.
func NewFeature(cfg chroma.Config, url string, client *chroma.Client, store storage.Client, bucket string, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(cfg, url, client, store, bucket, logger)}
}

func (f *Feature) Name() string    { return "integrity" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
