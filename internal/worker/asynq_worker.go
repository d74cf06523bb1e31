package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/logger"
	"github.com/wpc41205/my-personal-blog-project/internal/provider"
	"github.com/wpc41205/my-personal-blog-project/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskEngagementNotify, c.handleEngagementNotify)
}

func (c *Consumer) handleEngagementNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_engagement_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.EngagementNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_engagement_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.PostID == 0 {
		logger.Debugw("worker_engagement_notify_skip_invalid_payload", "post_id", payload.PostID)
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_engagement_notify_skip_service_nil", "post_id", payload.PostID)
		return nil
	}

	message := buildEngagementMessage(payload)
	postID := payload.PostID
	if err := c.NotificationService.Create(message, &postID); err != nil {
		logger.Warnw("worker_engagement_notify_create_failed",
			"post_id", payload.PostID,
			"kind", payload.Kind,
			"error", err,
		)
		return err
	}
	return nil
}

// buildEngagementMessage 拼接后台通知文案
func buildEngagementMessage(payload queue.EngagementNotifyPayload) string {
	name := strings.TrimSpace(payload.UserName)
	if name == "" {
		name = "Someone"
	}
	title := strings.TrimSpace(payload.PostTitle)
	if title == "" {
		title = fmt.Sprintf("post #%d", payload.PostID)
	}
	switch payload.Kind {
	case constants.EngagementKindComment:
		return fmt.Sprintf("%s commented on \"%s\"", name, title)
	default:
		return fmt.Sprintf("%s liked \"%s\"", name, title)
	}
}
