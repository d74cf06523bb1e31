package service

import (
	"context"
	"fmt"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
	"github.com/wpc41205/my-personal-blog-project/internal/queue"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"
)

// NotificationService 后台通知服务
// 队列可用时异步入队，不可用时直接落库
type NotificationService struct {
	repo        repository.NotificationRepository
	queueClient *queue.Client
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo repository.NotificationRepository, queueClient *queue.Client) *NotificationService {
	return &NotificationService{repo: repo, queueClient: queueClient}
}

// Create 直接创建通知
func (s *NotificationService) Create(message string, postID *uint) error {
	if message == "" {
		return ErrValidation
	}
	return s.repo.Create(&models.Notification{Message: message, PostID: postID})
}

// NotifyEngagement 推送互动通知：优先走队列，队列关闭时同步落库
func (s *NotificationService) NotifyEngagement(_ context.Context, kind string, postID uint, postTitle string, userID uint, userName string, commentID uint) error {
	payload := queue.EngagementNotifyPayload{
		Kind:      kind,
		PostID:    postID,
		PostTitle: postTitle,
		UserID:    userID,
		UserName:  userName,
		CommentID: commentID,
	}
	if s.queueClient.Enabled() {
		return s.queueClient.EnqueueEngagementNotify(payload)
	}
	return s.Create(buildInlineEngagementMessage(payload), &postID)
}

// buildInlineEngagementMessage 队列关闭时的同步落库文案，与 worker 保持一致
func buildInlineEngagementMessage(payload queue.EngagementNotifyPayload) string {
	name := payload.UserName
	if name == "" {
		name = "Someone"
	}
	title := payload.PostTitle
	if title == "" {
		title = fmt.Sprintf("post #%d", payload.PostID)
	}
	if payload.Kind == constants.EngagementKindComment {
		return fmt.Sprintf("%s commented on \"%s\"", name, title)
	}
	return fmt.Sprintf("%s liked \"%s\"", name, title)
}

// List 通知列表
func (s *NotificationService) List(filter repository.NotificationListFilter) ([]models.Notification, int64, error) {
	return s.repo.List(filter)
}

// MarkRead 标记单条已读
func (s *NotificationService) MarkRead(id uint) error {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotFound
	}
	return s.repo.MarkRead(id)
}

// MarkAllRead 标记全部已读
func (s *NotificationService) MarkAllRead() error {
	return s.repo.MarkAllRead()
}

// CountUnread 未读数
func (s *NotificationService) CountUnread() (int64, error) {
	return s.repo.CountUnread()
}
