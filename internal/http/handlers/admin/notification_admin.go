package admin

import (
	"errors"
	"strconv"

	"github.com/wpc41205/my-personal-blog-project/internal/http/response"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"
	"github.com/wpc41205/my-personal-blog-project/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminNotifications 获取通知列表 (Admin)
func (h *Handler) GetAdminNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	unreadOnly := c.Query("unread") == "true"

	notifications, total, err := h.NotificationService.List(repository.NotificationListFilter{
		Page:       page,
		PageSize:   pageSize,
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.notification_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, notifications, pagination)
}

// GetAdminNotificationUnreadCount 未读通知数 (Admin)
func (h *Handler) GetAdminNotificationUnreadCount(c *gin.Context) {
	count, err := h.NotificationService.CountUnread()
	if err != nil {
		respondError(c, response.CodeInternal, "error.notification_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// MarkAdminNotificationRead 单条通知标记已读 (Admin)
func (h *Handler) MarkAdminNotificationRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.NotificationService.MarkRead(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.notification_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.notification_update_failed", err)
		return
	}
	response.Success(c, gin.H{"read": true})
}

// MarkAdminNotificationsAllRead 全部通知标记已读 (Admin)
func (h *Handler) MarkAdminNotificationsAllRead(c *gin.Context) {
	if err := h.NotificationService.MarkAllRead(); err != nil {
		respondError(c, response.CodeInternal, "error.notification_update_failed", err)
		return
	}
	response.Success(c, gin.H{"read": true})
}
