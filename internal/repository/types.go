package repository

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page          int
	PageSize      int
	CategoryID    uint
	Category      string
	Search        string
	StatusID      int
	OnlyPublished bool
	OrderBy       string
}

// CommentListFilter 查询评论列表的过滤条件
type CommentListFilter struct {
	Page     int
	PageSize int
	PostID   uint
	UserID   uint
}

// NotificationListFilter 查询通知列表的过滤条件
type NotificationListFilter struct {
	Page       int
	PageSize   int
	UnreadOnly bool
}
