package sync

import (
	"subscription-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/initialize", h.HandleInitialize)
	group.Get("/count", h.HandleGetCount)
	group.Post("/chunk", h.HandleProcessChunk)
	group.Get("/log", h.HandleDownloadLog)
	group.Get("/stats", h.HandleStatistics)
	group.Get("/archive", h.HandleListArchive)
	group.Get("/archive/:name", h.HandleFetchArchive)
}

// initializeRequest is the body for HandleInitialize.
type initializeRequest struct {
	DryRun bool   `json:"dry_run"`
	Mode   string `json:"mode"`
	Date   string `json:"date"`
}

// chunkRequest is the body for HandleProcessChunk.
type chunkRequest struct {
	Offset int  `json:"offset"`
	DryRun bool `json:"dry_run"`
}

// HandleInitialize begins a new reconciliation session.
// @Summary Initialize sync session
// @Description Freezes the matching subscription IDs and opens a new audit log.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body initializeRequest true "Session parameters"
// @Success 200 {object} map[string]interface{} "Session info"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/initialize [post]
func (h *Handler) HandleInitialize(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req initializeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	logFile, err := h.service.Initialize(c.Context(), req.DryRun, req.Mode, req.Date)
	if err != nil {
		l.Error("Sync initialization failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Sync session initialized.",
		"log_file":   logFile,
		"chunk_size": h.service.ChunkSize(),
	})
}

// HandleGetCount returns the frozen identifier count for the active session.
// @Summary Get session record count
// @Description Returns the frozen ID list length; 0 when no session is active.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]int "Total"
// @Router /sync/count [get]
func (h *Handler) HandleGetCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"total": h.service.Count(),
	})
}

// HandleProcessChunk processes the next chunk of the frozen identifier list.
// @Summary Process one chunk
// @Description Reconciles the slice of records at the given offset.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body chunkRequest true "Chunk parameters"
// @Success 200 {object} models.ChunkResult "Chunk outcome"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/chunk [post]
func (h *Handler) HandleProcessChunk(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req chunkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.ProcessChunk(c.Context(), req.Offset, req.DryRun)
	if err != nil {
		l.Error("Chunk processing failed", zap.Int("offset", req.Offset), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleDownloadLog returns the active session's audit log.
// @Summary Download session log
// @Description Returns the full audit log text for the active session.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]string "Log content and filename"
// @Failure 404 {object} map[string]string "No log available"
// @Router /sync/log [get]
func (h *Handler) HandleDownloadLog(c *fiber.Ctx) error {
	content, filename, err := h.service.LogContents()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"log":      content,
		"filename": filename,
	})
}

// HandleStatistics returns live match counts for a mode.
// @Summary Get sync statistics
// @Description Returns how many subscriptions the mode currently matches.
// @Tags sync
// @Produce json
// @Param mode query string false "Sync mode"
// @Param date query string false "Modified-after filter (YYYY-MM-DD)"
// @Success 200 {object} models.Statistics "Statistics"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/stats [get]
func (h *Handler) HandleStatistics(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mode := ParseMode(c.Query("mode"))

	stats, err := h.service.Statistics(c.Context(), mode, c.Query("date"))
	if err != nil {
		l.Error("Statistics query failed", zap.String("mode", string(mode)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}

// HandleListArchive lists archived session logs.
// @Summary List archived logs
// @Tags sync
// @Produce json
// @Success 200 {array} ArchiveEntry "Archived logs"
// @Failure 404 {object} map[string]string "Archiving disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/archive [get]
func (h *Handler) HandleListArchive(c *fiber.Ctx) error {
	if h.service.archiver == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "log archiving is disabled",
		})
	}

	entries, err := h.service.archiver.List(c.Context())
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Archive listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(entries)
}

// HandleFetchArchive returns one archived session log.
// @Summary Fetch an archived log
// @Tags sync
// @Produce json
// @Param name path string true "Archived log filename"
// @Success 200 {object} map[string]string "Log content"
// @Failure 404 {object} map[string]string "Not found or archiving disabled"
// @Router /sync/archive/{name} [get]
func (h *Handler) HandleFetchArchive(c *fiber.Ctx) error {
	if h.service.archiver == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "log archiving is disabled",
		})
	}

	name := c.Params("name")
	content, err := h.service.archiver.Fetch(c.Context(), name)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"log":      content,
		"filename": name,
	})
}
