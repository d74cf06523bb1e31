package queue

import (
	"encoding/json"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskEngagementNotify 互动（点赞/评论）后台通知任务
	TaskEngagementNotify = constants.TaskEngagementNotify
)

// EngagementNotifyPayload 互动通知任务载荷
type EngagementNotifyPayload struct {
	Kind      string `json:"kind"` // like / comment
	PostID    uint   `json:"post_id"`
	PostTitle string `json:"post_title"`
	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	CommentID uint   `json:"comment_id,omitempty"`
}

// NewEngagementNotifyTask 创建互动通知任务
func NewEngagementNotifyTask(payload EngagementNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEngagementNotify, body), nil
}
