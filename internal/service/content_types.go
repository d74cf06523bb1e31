package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
)

// FeedPost 聚合后的文章视图，ID 带来源前缀（store_1 / external_3）
type FeedPost struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Status      string    `json:"status"`
	Likes       int64     `json:"likes"`
}

// PostFeed 聚合分页结果
type PostFeed struct {
	Posts       []FeedPost `json:"posts"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	TotalPosts  int        `json:"totalPosts"`
}

// ListPostsOptions 聚合列表查询条件
type ListPostsOptions struct {
	Page     int
	PageSize int
	Category string
	Keyword  string
}

// CategoryOption 前端下拉用的分类选项
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormatStoreID 生成本地源带前缀 ID
func FormatStoreID(id uint) string {
	return fmt.Sprintf("%s_%d", constants.SourceStore, id)
}

// FormatExternalID 生成外部源带前缀 ID
func FormatExternalID(id int64) string {
	return fmt.Sprintf("%s_%d", constants.SourceExternal, id)
}

// ParseFeedID 解析带前缀 ID，返回来源与原始 ID
func ParseFeedID(taggedID string) (string, int64, error) {
	trimmed := strings.TrimSpace(taggedID)
	idx := strings.LastIndex(trimmed, "_")
	if idx <= 0 || idx == len(trimmed)-1 {
		return "", 0, fmt.Errorf("%w: malformed post id %q", ErrValidation, taggedID)
	}
	source := trimmed[:idx]
	if source != constants.SourceStore && source != constants.SourceExternal {
		return "", 0, fmt.Errorf("%w: unknown post source %q", ErrValidation, source)
	}
	rawID, err := strconv.ParseInt(trimmed[idx+1:], 10, 64)
	if err != nil || rawID <= 0 {
		return "", 0, fmt.Errorf("%w: malformed post id %q", ErrValidation, taggedID)
	}
	return source, rawID, nil
}
