package api

import (
	"net/http"

	"github.com/duchauuuuu/flight-backend/internal/service/notifications"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service notifications.NotificationUseCase
}

func NewNotificationHandler(service notifications.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) Register(router *gin.RouterGroup) {
	router.GET("/user/:userId", h.listByUser)
	router.GET("/user/:userId/unread", h.listUnread)
	router.GET("/user/:userId/unread-count", h.unreadCount)
	router.PATCH("/:id/read", h.markRead)
	router.PATCH("/user/:userId/read-all", h.markAllRead)
}

func (h *NotificationHandler) listByUser(c *gin.Context) {
	list, err := h.service.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) listUnread(c *gin.Context) {
	list, err := h.service.ListUnreadByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) unreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NotificationHandler) markRead(c *gin.Context) {
	n, err := h.service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) markAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), c.Param("userId")); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
