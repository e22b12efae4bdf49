package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	store portssvc.NotificationSvc
}

func registerNotificationRoutes(rg *gin.RouterGroup, store portssvc.NotificationSvc) {
	h := &notificationHandler{store: store}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("", h.createNotification)
		notifications.POST("/:id/read", h.markRead)
		notifications.DELETE("/:id", h.dismiss)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Lists notifications newest first with the unread count
// @Tags notifications
// @Produce  json
// @Success 200 {object} dto.ListNotificationsResponse
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(h.store.ListNotifications(ctx), h.store.UnreadNotificationCount(ctx)))
}

// createNotification godoc
// @Summary Post a notification
// @Tags notifications
// @Accept  json
// @Produce  json
// @Param   notification body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /notifications [post]
func (h *notificationHandler) createNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	n, err := h.store.AddNotification(c.Request.Context(), req.Title, req.Message, req.Type)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create notification")
		return
	}
	c.JSON(http.StatusCreated, dto.ToNotificationResponse(n))
}

// markRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param   id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	if !h.store.MarkNotificationAsRead(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// dismiss godoc
// @Summary Dismiss a notification
// @Tags notifications
// @Param   id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id} [delete]
func (h *notificationHandler) dismiss(c *gin.Context) {
	if !h.store.DismissNotification(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
