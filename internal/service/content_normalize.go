package service

import (
	"sort"
	"strings"

	"github.com/wpc41205/my-personal-blog-project/internal/blogapi"
	"github.com/wpc41205/my-personal-blog-project/internal/config"
	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
)

// normalizer 把两个内容源的文章统一成 FeedPost
type normalizer struct {
	canonicalAuthor string
	legacyAuthor    string
}

func newNormalizer(cfg config.ContentConfig) *normalizer {
	return &normalizer{
		canonicalAuthor: strings.TrimSpace(cfg.CanonicalAuthor),
		legacyAuthor:    strings.TrimSpace(cfg.LegacyAuthor),
	}
}

// fromStore 本地文章转聚合视图
func (n *normalizer) fromStore(post models.Post, categoryName string, likes int64) FeedPost {
	return FeedPost{
		ID:          FormatStoreID(post.ID),
		Source:      constants.SourceStore,
		Title:       strings.TrimSpace(post.Title),
		Description: unescapeNewlines(post.Description),
		Content:     unescapeNewlines(post.Content),
		Author:      n.rewriteAuthor(post.Author),
		Date:        post.Date,
		Category:    categoryName,
		Image:       post.Image,
		Status:      statusLabel(post.StatusID),
		Likes:       likes,
	}
}

// fromExternal 外部文章转聚合视图
func (n *normalizer) fromExternal(post blogapi.Post) FeedPost {
	image := ""
	if post.Image != nil {
		image = *post.Image
	}
	return FeedPost{
		ID:          FormatExternalID(post.ID),
		Source:      constants.SourceExternal,
		Title:       strings.TrimSpace(post.Title),
		Description: unescapeNewlines(post.Description),
		Content:     unescapeNewlines(post.Content),
		Author:      n.rewriteAuthor(post.Author),
		Date:        post.ParsedDate(),
		Category:    strings.TrimSpace(post.Category),
		Image:       image,
		Status:      constants.PostStatusPublished,
		Likes:       post.Likes,
	}
}

// rewriteAuthor 旧作者署名统一替换为规范署名
func (n *normalizer) rewriteAuthor(author string) string {
	trimmed := strings.TrimSpace(author)
	if n.legacyAuthor != "" && trimmed == n.legacyAuthor && n.canonicalAuthor != "" {
		return n.canonicalAuthor
	}
	return trimmed
}

// unescapeNewlines 把字面量 \n 恢复为真实换行
func unescapeNewlines(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

func statusLabel(statusID int) string {
	switch statusID {
	case constants.PostStatusDraftID:
		return constants.PostStatusDraft
	default:
		return constants.PostStatusPublished
	}
}

// matchFeedPost 按分类与关键词过滤，均大小写不敏感，关键词为子串匹配
func matchFeedPost(post FeedPost, category, keyword string) bool {
	if category = strings.TrimSpace(category); category != "" && !strings.EqualFold(category, "highlight") {
		if !strings.EqualFold(post.Category, category) {
			return false
		}
	}
	if keyword = strings.ToLower(strings.TrimSpace(keyword)); keyword != "" {
		haystack := strings.ToLower(post.Title + "\n" + post.Description + "\n" + post.Content)
		if !strings.Contains(haystack, keyword) {
			return false
		}
	}
	return true
}

// sortFeedPosts 按日期倒序稳定排序，同日保持源内原始顺序
func sortFeedPosts(posts []FeedPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}

// paginateFeed 内存切片分页，页码越界返回空页
func paginateFeed(posts []FeedPost, page, pageSize int) *PostFeed {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	total := len(posts)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pagePosts := make([]FeedPost, end-start)
	copy(pagePosts, posts[start:end])

	return &PostFeed{
		Posts:       pagePosts,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
	}
}
