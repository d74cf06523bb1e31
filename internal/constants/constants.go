package constants

// 内容源常量
const (
	SourceStore    = "store"    // 本地关系库内容源
	SourceExternal = "external" // 外部内容 API
)

// 文章状态常量
const (
	PostStatusPublishedID = 1
	PostStatusDraftID     = 2

	PostStatusPublished = "Published"
	PostStatusDraft     = "Draft"
)

// 管理员角色常量
const (
	AdminRoleSuper  = "admin"
	AdminRoleEditor = "editor"
)

// 互动事件类型常量
const (
	EngagementKindLike    = "like"
	EngagementKindComment = "comment"
)

// 队列常量
const (
	QueueDefault = "default"

	TaskEngagementNotify = "notification:engagement"
)
