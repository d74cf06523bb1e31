package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/blogapi"
	"github.com/wpc41205/my-personal-blog-project/internal/cache"
	"github.com/wpc41205/my-personal-blog-project/internal/config"
	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/logger"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"
)

// ExternalClient 外部内容源接口，便于测试替换
type ExternalClient interface {
	FetchAllPosts(ctx context.Context) ([]blogapi.Post, bool, error)
	FetchPost(ctx context.Context, id int64) (*blogapi.Post, error)
}

// ContentService 内容聚合服务
// 负责合并本地库与外部 API 两个内容源，统一过滤、排序与分页
type ContentService struct {
	cfg          *config.Config
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	likeRepo     repository.LikeRepository
	commentRepo  repository.CommentRepository
	external     ExternalClient
	norm         *normalizer
}

// NewContentService 创建内容聚合服务，external 为 nil 时仅使用本地源
func NewContentService(
	cfg *config.Config,
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	external ExternalClient,
) *ContentService {
	return &ContentService{
		cfg:          cfg,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		external:     external,
		norm:         newNormalizer(cfg.Content),
	}
}

type sourceResult struct {
	source string
	posts  []FeedPost
	err    error
}

// ListPosts 聚合列表：双源并发拉取，单源失败静默降级，双源失败返回错误
func (s *ContentService) ListPosts(ctx context.Context, opts ListPostsOptions) (*PostFeed, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize <= 0 {
		opts.PageSize = s.defaultPageSize()
	}

	cacheKey := cache.FeedKey(opts.Page, opts.PageSize, strings.ToLower(opts.Category), strings.ToLower(opts.Keyword))
	var cached PostFeed
	if hit, err := cache.GetFeed(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	merged, err := s.collectPosts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := merged[:0:0]
	for _, post := range merged {
		if matchFeedPost(post, opts.Category, opts.Keyword) {
			filtered = append(filtered, post)
		}
	}
	sortFeedPosts(filtered)

	feed := paginateFeed(filtered, opts.Page, opts.PageSize)
	if err := cache.SetFeed(ctx, cacheKey, feed); err != nil {
		logger.Warnw("content_feed_cache_set_failed", "error", err)
	}
	return feed, nil
}

// SearchPosts 关键词搜索，语义与 ListPosts 一致
func (s *ContentService) SearchPosts(ctx context.Context, keyword string, page, pageSize int) (*PostFeed, error) {
	return s.ListPosts(ctx, ListPostsOptions{
		Page:     page,
		PageSize: pageSize,
		Keyword:  keyword,
	})
}

// collectPosts 并发拉取两个源并合并，本地源排在前以保证同日稳定顺序
func (s *ContentService) collectPosts(ctx context.Context) ([]FeedPost, error) {
	results := make(chan sourceResult, 2)

	go func() {
		posts, err := s.fetchStorePosts(ctx)
		results <- sourceResult{source: constants.SourceStore, posts: posts, err: err}
	}()
	go func() {
		posts, err := s.fetchExternalPosts(ctx)
		results <- sourceResult{source: constants.SourceExternal, posts: posts, err: err}
	}()

	bySource := make(map[string]sourceResult, 2)
	for i := 0; i < 2; i++ {
		r := <-results
		bySource[r.source] = r
	}

	store := bySource[constants.SourceStore]
	external := bySource[constants.SourceExternal]
	if store.err != nil && external.err != nil {
		logger.Errorw("content_all_sources_failed", "store_error", store.err, "external_error", external.err)
		return nil, ErrSourcesUnavailable
	}
	for _, r := range []sourceResult{store, external} {
		if r.err != nil {
			logger.Warnw("content_source_degraded", "source", r.source, "error", r.err)
		}
	}

	merged := make([]FeedPost, 0, len(store.posts)+len(external.posts))
	merged = append(merged, store.posts...)
	merged = append(merged, external.posts...)
	return merged, nil
}

func (s *ContentService) fetchStorePosts(_ context.Context) ([]FeedPost, error) {
	posts, err := s.postRepo.ListAll(true)
	if err != nil {
		return nil, err
	}

	categoryNames, err := s.categoryNames()
	if err != nil {
		// 分类名解析失败退回空标签，不拖垮本地源
		logger.Warnw("content_category_names_degraded", "error", err)
		categoryNames = map[uint]string{}
	}

	ids := make([]uint, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	likeCounts, err := s.likeRepo.CountByPosts(ids)
	if err != nil {
		// 点赞计数失败退回缓存列，不拖垮本地源
		logger.Warnw("content_like_counts_degraded", "error", err)
		likeCounts = nil
	}

	feed := make([]FeedPost, 0, len(posts))
	for _, post := range posts {
		likes := post.LikesCount
		if likeCounts != nil {
			likes = likeCounts[post.ID]
		}
		feed = append(feed, s.norm.fromStore(post, categoryNames[post.CategoryID], likes))
	}
	return feed, nil
}

func (s *ContentService) fetchExternalPosts(ctx context.Context) ([]FeedPost, error) {
	if s.external == nil {
		return []FeedPost{}, nil
	}
	posts, truncated, err := s.external.FetchAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	if truncated {
		logger.Warnw("content_external_fetch_truncated", "fetched", len(posts), "limit", s.cfg.External.FetchLimit)
	}
	feed := make([]FeedPost, 0, len(posts))
	for _, post := range posts {
		feed = append(feed, s.norm.fromExternal(post))
	}
	return feed, nil
}

// GetPost 按带前缀 ID 取文章详情
func (s *ContentService) GetPost(ctx context.Context, taggedID string, onlyPublished bool) (*FeedPost, error) {
	source, rawID, err := ParseFeedID(taggedID)
	if err != nil {
		return nil, err
	}

	switch source {
	case constants.SourceStore:
		post, err := s.postRepo.GetByID(uint(rawID))
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, ErrNotFound
		}
		if onlyPublished && post.StatusID != constants.PostStatusPublishedID {
			return nil, ErrNotFound
		}
		categoryNames, err := s.categoryNames()
		if err != nil {
			return nil, err
		}
		likes := post.LikesCount
		if count, err := s.likeRepo.CountByPost(post.ID); err == nil {
			likes = count
		} else {
			logger.Warnw("content_like_count_degraded", "post_id", post.ID, "error", err)
		}
		view := s.norm.fromStore(*post, categoryNames[post.CategoryID], likes)
		return &view, nil
	default:
		if s.external == nil {
			return nil, ErrNotFound
		}
		post, err := s.external.FetchPost(ctx, rawID)
		if err != nil {
			if errors.Is(err, blogapi.ErrPostNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		view := s.norm.fromExternal(*post)
		return &view, nil
	}
}

// ListCategories 分类选项三级回退：分类表 → 聚合文章去重 → 配置兜底
func (s *ContentService) ListCategories(ctx context.Context) ([]CategoryOption, error) {
	if cached, hit, err := cache.GetCategories(ctx); err == nil && hit {
		return fromCachedCategories(cached), nil
	}

	options := []CategoryOption{{Value: "highlight", Label: "Highlight"}}

	labels := s.categoryLabelsFromTable()
	if len(labels) == 0 {
		labels = s.categoryLabelsFromPosts(ctx)
	}
	if len(labels) == 0 {
		labels = s.cfg.Content.FallbackCategories
	}

	seen := map[string]struct{}{}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		value := strings.ToLower(label)
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		options = append(options, CategoryOption{Value: value, Label: label})
	}

	if err := cache.SetCategories(ctx, toCachedCategories(options)); err != nil {
		logger.Warnw("content_category_cache_set_failed", "error", err)
	}
	return options, nil
}

func (s *ContentService) categoryLabelsFromTable() []string {
	categories, err := s.categoryRepo.List()
	if err != nil {
		logger.Warnw("content_category_table_degraded", "error", err)
		return nil
	}
	labels := make([]string, 0, len(categories))
	for _, category := range categories {
		labels = append(labels, category.Name)
	}
	return labels
}

func (s *ContentService) categoryLabelsFromPosts(ctx context.Context) []string {
	merged, err := s.collectPosts(ctx)
	if err != nil {
		logger.Warnw("content_category_derive_degraded", "error", err)
		return nil
	}
	sortFeedPosts(merged)
	labels := make([]string, 0)
	seen := map[string]struct{}{}
	for _, post := range merged {
		key := strings.ToLower(strings.TrimSpace(post.Category))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		labels = append(labels, strings.TrimSpace(post.Category))
	}
	return labels
}

// CreatePostInput 创建/更新文章输入
type CreatePostInput struct {
	Title       string
	Description string
	Content     string
	Image       string
	Author      string
	Category    string
	StatusID    int
	Date        *time.Time
}

// CreatePost 创建本地文章
func (s *ContentService) CreatePost(ctx context.Context, input CreatePostInput) (*FeedPost, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(input.Category)
	if err != nil {
		return nil, err
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = s.cfg.Content.CanonicalAuthor
	}
	statusID := input.StatusID
	if statusID != constants.PostStatusDraftID {
		statusID = constants.PostStatusPublishedID
	}
	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	post := models.Post{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Content:     input.Content,
		Image:       input.Image,
		Author:      author,
		CategoryID:  category.ID,
		StatusID:    statusID,
		Date:        date,
	}
	if err := s.postRepo.Create(&post); err != nil {
		return nil, err
	}
	s.invalidateContentCaches(ctx)

	view := s.norm.fromStore(post, category.Name, 0)
	return &view, nil
}

// UpdatePost 更新本地文章，外部源 ID 在任何 I/O 前拒绝
func (s *ContentService) UpdatePost(ctx context.Context, taggedID string, input CreatePostInput) (*FeedPost, error) {
	source, rawID, err := ParseFeedID(taggedID)
	if err != nil {
		return nil, err
	}
	if source != constants.SourceStore {
		return nil, ErrExternalReadOnly
	}
	if err := validatePostInput(input); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(uint(rawID))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	category, err := s.resolveCategory(input.Category)
	if err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Description = input.Description
	post.Content = input.Content
	post.Image = input.Image
	if author := strings.TrimSpace(input.Author); author != "" {
		post.Author = author
	}
	post.CategoryID = category.ID
	if input.StatusID == constants.PostStatusDraftID || input.StatusID == constants.PostStatusPublishedID {
		post.StatusID = input.StatusID
	}
	if input.Date != nil {
		post.Date = *input.Date
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	s.invalidateContentCaches(ctx)

	likes := post.LikesCount
	if count, err := s.likeRepo.CountByPost(post.ID); err == nil {
		likes = count
	}
	view := s.norm.fromStore(*post, category.Name, likes)
	return &view, nil
}

// DeletePost 删除本地文章及其互动数据，外部源 ID 在任何 I/O 前拒绝
func (s *ContentService) DeletePost(ctx context.Context, taggedID string) error {
	source, rawID, err := ParseFeedID(taggedID)
	if err != nil {
		return err
	}
	if source != constants.SourceStore {
		return ErrExternalReadOnly
	}

	post, err := s.postRepo.GetByID(uint(rawID))
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if err := s.postRepo.Delete(post.ID); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByPost(post.ID); err != nil {
		logger.Warnw("content_delete_comments_failed", "post_id", post.ID, "error", err)
	}
	if err := s.likeRepo.DeleteByPost(post.ID); err != nil {
		logger.Warnw("content_delete_likes_failed", "post_id", post.ID, "error", err)
	}
	s.invalidateContentCaches(ctx)
	return nil
}

// ListStorePosts 后台本地文章列表（含草稿）
func (s *ContentService) ListStorePosts(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.postRepo.List(filter)
}

func (s *ContentService) resolveCategory(name string) (*models.Category, error) {
	trimmed := strings.TrimSpace(name)
	category, err := s.categoryRepo.GetByName(trimmed)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	// 未命中的标签回落到第一个分类，不生成新分类
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		logger.Warnw("content_category_label_unmatched", "label", trimmed, "fallback", categories[0].Name)
		return &categories[0], nil
	}

	// 分类表为空时才落库，保证首条内容可以建档
	category = &models.Category{Name: trimmed}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ContentService) categoryNames() (map[uint]string, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names, nil
}

func (s *ContentService) invalidateContentCaches(ctx context.Context) {
	if err := cache.InvalidateFeeds(ctx); err != nil {
		logger.Warnw("content_feed_cache_invalidate_failed", "error", err)
	}
	if err := cache.DelCategories(ctx); err != nil {
		logger.Warnw("content_category_cache_invalidate_failed", "error", err)
	}
}

func (s *ContentService) defaultPageSize() int {
	if s.cfg != nil && s.cfg.Content.DefaultPageSize > 0 {
		return s.cfg.Content.DefaultPageSize
	}
	return 6
}

func validatePostInput(input CreatePostInput) error {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Content) == "" ||
		strings.TrimSpace(input.Category) == "" {
		return ErrValidation
	}
	return nil
}

func toCachedCategories(options []CategoryOption) []cache.CachedCategory {
	cached := make([]cache.CachedCategory, 0, len(options))
	for _, option := range options {
		cached = append(cached, cache.CachedCategory{Value: option.Value, Label: option.Label})
	}
	return cached
}

func fromCachedCategories(cached []cache.CachedCategory) []CategoryOption {
	options := make([]CategoryOption, 0, len(cached))
	for _, item := range cached {
		options = append(options, CategoryOption{Value: item.Value, Label: item.Label})
	}
	return options
}
