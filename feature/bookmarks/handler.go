package bookmarks

import (
	"context"
	"errors"
	"time"

	"bookmark-sync/core/logger"
	"bookmark-sync/feature/bookmarks/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bookmarks.
type Handler struct {
	service *Service
	timeout time.Duration
}

// NewHandler creates a new HTTP handler. A zero timeout leaves request
// contexts unbounded.
func NewHandler(service *Service, timeout time.Duration) *Handler {
	return &Handler{service: service, timeout: timeout}
}

// RegisterRoutes registers the bookmark routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bookmarks")
	group.Get("/user/:google_id", h.HandleList)
	group.Post("/", h.HandleAdd)
	group.Post("/batch", h.HandleBatchAdd)
	group.Post("/batch-delete", h.HandleBatchDelete)
	group.Post("/sync", h.HandleSync)

	// Must precede /:google_id/:test_id, which would otherwise match it.
	group.Delete("/user/:google_id", h.HandleClear)
	group.Delete("/:google_id/:test_id", h.HandleRemove)

	group.Post("/user/:google_id/snapshots", h.HandleExportSnapshot)
	group.Get("/user/:google_id/snapshots", h.HandleListSnapshots)
	group.Post("/user/:google_id/snapshots/restore", h.HandleRestoreSnapshot)
}

func (h *Handler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// HandleList returns every bookmark of a user.
// @Summary List Bookmarks
// @Description List the bookmarks of a user ordered by test name.
// @Tags bookmarks
// @Produce json
// @Param google_id path string true "External user id"
// @Success 200 {array} models.Bookmark "Bookmarks"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Database error"
// @Router /bookmarks/user/{google_id} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	bookmarks, err := h.service.ListBookmarks(ctx, c.Params("google_id"))
	if err != nil {
		return h.fail(c, "List bookmarks failed", err)
	}
	return c.JSON(bookmarks)
}

// HandleAdd creates a single bookmark.
// @Summary Add Bookmark
// @Description Add one bookmark. Existing bookmarks are never overwritten.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param body body models.AddRequest true "Bookmark"
// @Success 201 {object} models.Bookmark "Created bookmark"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Bookmark already exists"
// @Failure 500 {object} map[string]string "Database error"
// @Router /bookmarks [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	var req models.AddRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	bookmark, err := h.service.AddBookmark(ctx, req)
	if errors.Is(err, ErrAlreadyExists) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Bookmark already exists",
		})
	}
	if err != nil {
		return h.fail(c, "Add bookmark failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(bookmark)
}

// HandleBatchAdd adds many bookmarks in one transaction.
// @Summary Batch Add Bookmarks
// @Description Add many bookmarks. Items without a test id or already bookmarked are skipped.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param body body models.BatchAddRequest true "Bookmarks"
// @Success 201 {object} models.BatchAddResponse "Batch result"
// @Failure 400 {object} map[string]string "Missing required fields or empty bookmarks array"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Database error"
// @Router /bookmarks/batch [post]
func (h *Handler) HandleBatchAdd(c *fiber.Ctx) error {
	var req models.BatchAddRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	result, err := h.service.BatchAdd(ctx, req)
	if err != nil {
		return h.fail(c, "Batch add failed", err)
	}

	logger.WithRayID(h.service.logger, c).Info("Batch add completed",
		zap.String("google_id", req.GoogleID),
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", len(result.Skipped)))

	return c.Status(fiber.StatusCreated).JSON(batchAddResponse("Batch operation completed", result))
}

// HandleBatchDelete removes many bookmarks in one statement.
// @Summary Batch Delete Bookmarks
// @Description Delete the bookmarks of a user whose test ids are listed.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param body body models.BatchDeleteRequest true "Test ids"
// @Success 200 {object} models.BatchDeleteResponse "Delete result"
// @Failure 400 {object} map[string]string "Missing required fields or empty test_ids array"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Database error"
// @Router /bookmarks/batch-delete [post]
func (h *Handler) HandleBatchDelete(c *fiber.Ctx) error {
	var req models.BatchDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	result, err := h.service.BatchDelete(ctx, req)
	if err != nil {
		return h.fail(c, "Batch delete failed", err)
	}

	return c.JSON(models.BatchDeleteResponse{
		Message:       "Batch delete completed",
		DeletedCount:  len(result.DeletedIDs),
		NotFoundCount: result.NotFound(),
		DeletedIDs:    result.DeletedIDs,
	})
}

// HandleSync applies deletions then additions atomically.
// @Summary Sync Bookmarks
// @Description Apply a client's offline changes. Deletions run before additions.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param body body models.SyncRequest true "Changes"
// @Success 200 {object} models.SyncResponse "Sync result"
// @Failure 400 {object} map[string]string "Missing google_id or no operations"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Database error"
// @Router /bookmarks/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	var req models.SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	result, err := h.service.Sync(ctx, req)
	if err != nil {
		return h.fail(c, "Sync failed", err)
	}

	logger.WithRayID(h.service.logger, c).Info("Sync completed",
		zap.String("google_id", req.GoogleID),
		zap.Int("deleted", len(result.Deleted.DeletedIDs)),
		zap.Int("added", len(result.Added.Added)),
		zap.Int("skipped", len(result.Added.Skipped)))

	return c.JSON(models.SyncResponse{
		Message:      "Sync completed successfully",
		DeletedCount: len(result.Deleted.DeletedIDs),
		AddedCount:   len(result.Added.Added),
		SkippedCount: len(result.Added.Skipped),
		Details:      result.Added,
	})
}

// HandleRemove deletes a single bookmark.
// @Summary Remove Bookmark
// @Tags bookmarks
// @Produce json
// @Param google_id path string true "External user id"
// @Param test_id path string true "Test id"
// @Success 200 {object} models.RemoveResponse "Removed"
// @Failure 404 {object} models.RemoveResponse "Bookmark not found"
// @Failure 500 {object} map[string]string "Database error"
// @Router /bookmarks/{google_id}/{test_id} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	err := h.service.RemoveBookmark(ctx, c.Params("google_id"), c.Params("test_id"))
	switch {
	case errors.Is(err, ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.RemoveResponse{
			Message: "Bookmark not found (user doesn't exist)",
		})
	case errors.Is(err, ErrBookmarkNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.RemoveResponse{
			Message: "Bookmark not found",
		})
	case err != nil:
		return h.fail(c, "Remove bookmark failed", err)
	}

	return c.JSON(models.RemoveResponse{Message: "Bookmark removed", Deleted: true})
}

// HandleClear deletes every bookmark of a user.
// @Summary Clear Bookmarks
// @Description Delete all bookmarks of a user. An unknown user is reported with a zero count.
// @Tags bookmarks
// @Produce json
// @Param google_id path string true "External user id"
// @Success 200 {object} models.ClearResponse "Cleared"
// @Failure 500 {object} map[string]string "Database error"
// @Router /bookmarks/user/{google_id} [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	result, err := h.service.ClearBookmarks(ctx, c.Params("google_id"))
	if err != nil {
		return h.fail(c, "Clear bookmarks failed", err)
	}

	msg := "All bookmarks cleared"
	if !result.UserFound {
		msg = "No bookmarks to clear (user not found)"
	}
	return c.JSON(models.ClearResponse{Message: msg, DeletedCount: result.Deleted})
}

// HandleExportSnapshot stores the current bookmarks of a user in object storage.
// @Summary Export Snapshot
// @Tags snapshots
// @Produce json
// @Param google_id path string true "External user id"
// @Success 201 {object} models.SnapshotInfo "Snapshot"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 503 {object} map[string]string "Snapshot storage not configured"
// @Router /bookmarks/user/{google_id}/snapshots [post]
func (h *Handler) HandleExportSnapshot(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	info, err := h.service.ExportSnapshot(ctx, c.Params("google_id"))
	if err != nil {
		return h.fail(c, "Snapshot export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleListSnapshots lists the stored snapshots of a user.
// @Summary List Snapshots
// @Tags snapshots
// @Produce json
// @Param google_id path string true "External user id"
// @Success 200 {array} models.SnapshotInfo "Snapshots"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 503 {object} map[string]string "Snapshot storage not configured"
// @Router /bookmarks/user/{google_id}/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	infos, err := h.service.ListSnapshots(ctx, c.Params("google_id"))
	if err != nil {
		return h.fail(c, "Snapshot listing failed", err)
	}
	return c.JSON(infos)
}

// HandleRestoreSnapshot re-adds the bookmarks of a stored snapshot.
// @Summary Restore Snapshot
// @Description Re-add the bookmarks of a snapshot. Bookmarks that still exist are skipped.
// @Tags snapshots
// @Accept json
// @Produce json
// @Param google_id path string true "External user id"
// @Param body body models.RestoreRequest true "Snapshot key"
// @Success 200 {object} models.BatchAddResponse "Restore result"
// @Failure 400 {object} map[string]string "Invalid snapshot key"
// @Failure 404 {object} map[string]string "User or snapshot not found"
// @Failure 503 {object} map[string]string "Snapshot storage not configured"
// @Router /bookmarks/user/{google_id}/snapshots/restore [post]
func (h *Handler) HandleRestoreSnapshot(c *fiber.Ctx) error {
	var req models.RestoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	result, err := h.service.RestoreSnapshot(ctx, c.Params("google_id"), req.ObjectKey)
	if err != nil {
		return h.fail(c, "Snapshot restore failed", err)
	}
	return c.JSON(batchAddResponse("Snapshot restored", result))
}

// fail maps service errors to responses. Unexpected errors are logged and
// reported without detail.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Message})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, ErrStorageDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Snapshot storage not configured"})
	case errors.Is(err, ErrSnapshotNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Snapshot not found"})
	}

	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

func batchAddResponse(msg string, result models.AddResult) models.BatchAddResponse {
	return models.BatchAddResponse{
		Message:      msg,
		AddedCount:   len(result.Added),
		SkippedCount: len(result.Skipped),
		Added:        result.Added,
		Skipped:      result.Skipped,
	}
}
