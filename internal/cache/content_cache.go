package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	categoryCacheTTL = time.Minute
	feedCacheTTL     = time.Minute

	feedKeyPrefix = "content:feed:"
	categoryKey   = "content:categories"
)

// CachedCategory 分类缓存条目
type CachedCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetCategories 读取分类缓存
func GetCategories(ctx context.Context) ([]CachedCategory, bool, error) {
	var categories []CachedCategory
	hit, err := GetJSON(ctx, categoryKey, &categories)
	if err != nil || !hit {
		return nil, hit, err
	}
	return categories, true, nil
}

// SetCategories 写入分类缓存
func SetCategories(ctx context.Context, categories []CachedCategory) error {
	return SetJSON(ctx, categoryKey, categories, categoryCacheTTL)
}

// DelCategories 删除分类缓存
func DelCategories(ctx context.Context) error {
	return Del(ctx, categoryKey)
}

// FeedKey 生成聚合列表的缓存键
func FeedKey(page, pageSize int, category, keyword string) string {
	return fmt.Sprintf("%sp%d:s%d:c%s:k%s", feedKeyPrefix, page, pageSize, category, keyword)
}

// GetFeed 读取聚合列表缓存
func GetFeed(ctx context.Context, key string, dest interface{}) (bool, error) {
	return GetJSON(ctx, key, dest)
}

// SetFeed 写入聚合列表缓存，TTL 较短以容忍外部源变化
func SetFeed(ctx context.Context, key string, value interface{}) error {
	return SetJSON(ctx, key, value, feedCacheTTL)
}

// InvalidateFeeds 本地内容变更后清空聚合列表缓存
func InvalidateFeeds(ctx context.Context) error {
	return DelByPrefix(ctx, feedKeyPrefix)
}
