package handler

import (
	"net/http"

	"github.com/stpnv0/rahi/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListNotifications(c *ginext.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	userID := actor(c).ID
	items, err := h.notificationService.List(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	unread, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NotificationsResponse{Items: items, Unread: unread})
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	if err := h.notificationService.MarkRead(c.Request.Context(), actor(c).ID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}

func (h *Handler) MarkAllNotificationsRead(c *ginext.Context) {
	n, err := h.notificationService.MarkAllRead(c.Request.Context(), actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

func (h *Handler) ClearNotifications(c *ginext.Context) {
	if err := h.notificationService.Clear(c.Request.Context(), actor(c).ID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RebuildNotifications(c *ginext.Context) {
	n, err := h.notificationService.Rebuild(c.Request.Context(), actor(c).ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}
