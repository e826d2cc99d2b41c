package integrity

import (
	"chroma-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/directory", h.HandleDirectoryCheck)
	group.Get("/binary", h.HandleBinaryCheck)
	group.Get("/server", h.HandleServerCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the data directory, server executable, running server and snapshot bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report
// @Failure 503 {object} integrity.Report
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.Run(c.Context())
	if !report.Healthy {
		l.Warn("Integrity checks failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleDirectoryCheck checks and optionally creates the data directory.
// @Summary Check Data Directory
// @Description Checks that the persistence directory exists and is writable. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the directory when missing"
// @Success 200 {object} checks.DirectoryReport
// @Failure 500 {object} map[string]string
// @Router /integrity/directory [get]
func (h *Handler) HandleDirectoryCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	report := h.service.CheckDirectory()
	if !report.Exists && fix {
		if err := h.service.FixDirectory(); err != nil {
			l.Error("Failed to create data directory", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		report = h.service.CheckDirectory()
	}
	return c.JSON(report)
}

// HandleBinaryCheck checks the server executable.
// @Summary Check Server Executable
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.BinaryReport
// @Router /integrity/binary [get]
func (h *Handler) HandleBinaryCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckBinary())
}

// HandleServerCheck checks the running server.
// @Summary Check Chroma Server
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ServerReport
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckServer())
}

// HandleStorageCheck checks the snapshot bucket.
// @Summary Check Snapshot Bucket
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.StorageReport
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckStorage(c.Context()))
}
