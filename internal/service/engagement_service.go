package service

import (
	"context"
	"strings"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/logger"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"

	"github.com/google/uuid"
)

// EngagementService 互动服务（点赞/评论），外围失败降级而不阻断主操作
type EngagementService struct {
	postRepo     repository.PostRepository
	likeRepo     repository.LikeRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	notification *NotificationService
}

// NewEngagementService 创建互动服务
func NewEngagementService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	notification *NotificationService,
) *EngagementService {
	return &EngagementService{
		postRepo:     postRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		notification: notification,
	}
}

// LikeResult 点赞结果，Degraded 表示点赞表不可用、返回的是乐观结果，
// CountDegraded 表示计数刷新失败时返回的是估算值
type LikeResult struct {
	Liked         bool  `json:"liked"`
	Count         int64 `json:"count"`
	Degraded      bool  `json:"degraded"`
	CountDegraded bool  `json:"count_degraded"`
}

// CommentAuthor 评论作者摘要
type CommentAuthor struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// CommentView 评论视图，AuthorDegraded 表示作者信息不可用时的占位，
// Degraded 表示评论未落库、返回的是本地合成对象
type CommentView struct {
	ID             uint          `json:"id"`
	LocalID        string        `json:"local_id,omitempty"`
	PostID         string        `json:"post_id"`
	Content        string        `json:"content"`
	CreatedAt      time.Time     `json:"created_at"`
	Author         CommentAuthor `json:"author"`
	AuthorDegraded bool          `json:"author_degraded"`
	Degraded       bool          `json:"degraded"`
}

// resolveStorePost 解析带前缀 ID 并确认本地文章存在，外部源一律拒绝且不触发 I/O
func (s *EngagementService) resolveStorePost(taggedID string) (*models.Post, error) {
	source, rawID, err := ParseFeedID(taggedID)
	if err != nil {
		return nil, err
	}
	if source != constants.SourceStore {
		return nil, ErrExternalReadOnly
	}
	post, err := s.postRepo.GetByID(uint(rawID))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// ToggleLike 点赞开关：已赞取消，未赞新增
func (s *EngagementService) ToggleLike(ctx context.Context, taggedID string, userID uint) (*LikeResult, error) {
	post, err := s.resolveStorePost(taggedID)
	if err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.GetByPostAndUser(post.ID, userID)
	if err != nil {
		logger.Warnw("engagement_like_read_degraded", "post_id", post.ID, "error", err)
		return degradedLikeResult(post.LikesCount), nil
	}

	liked := existing == nil
	if liked {
		if err := s.likeRepo.Create(&models.PostLike{PostID: post.ID, UserID: userID}); err != nil {
			logger.Warnw("engagement_like_write_degraded", "post_id", post.ID, "error", err)
			return degradedLikeResult(post.LikesCount), nil
		}
	} else {
		if err := s.likeRepo.DeleteByPostAndUser(post.ID, userID); err != nil {
			logger.Warnw("engagement_like_write_degraded", "post_id", post.ID, "error", err)
			return degradedLikeResult(post.LikesCount), nil
		}
	}

	result := &LikeResult{Liked: liked}
	count, err := s.likeRepo.CountByPost(post.ID)
	if err != nil {
		// 计数失败按缓存列估算，不让点赞本身失败
		logger.Warnw("engagement_like_count_degraded", "post_id", post.ID, "error", err)
		result.Count = estimateLikeCount(post.LikesCount, liked)
		result.CountDegraded = true
		return result, nil
	}
	result.Count = count

	if err := s.postRepo.UpdateLikesCount(post.ID, count); err != nil {
		logger.Warnw("engagement_likes_cache_update_failed", "post_id", post.ID, "error", err)
	}

	if liked {
		s.notifyEngagement(ctx, constants.EngagementKindLike, post, userID, 0)
	}
	return result, nil
}

// HasLiked 查询用户是否已赞，点赞表不可用时按未赞处理
func (s *EngagementService) HasLiked(taggedID string, userID uint) (bool, error) {
	post, err := s.resolveStorePost(taggedID)
	if err != nil {
		return false, err
	}
	like, err := s.likeRepo.GetByPostAndUser(post.ID, userID)
	if err != nil {
		logger.Warnw("engagement_like_status_degraded", "post_id", post.ID, "error", err)
		return false, nil
	}
	return like != nil, nil
}

// LikeCount 查询文章点赞数，点赞表不可用时按 0 处理
func (s *EngagementService) LikeCount(taggedID string) (int64, error) {
	post, err := s.resolveStorePost(taggedID)
	if err != nil {
		return 0, err
	}
	count, err := s.likeRepo.CountByPost(post.ID)
	if err != nil {
		logger.Warnw("engagement_like_count_degraded", "post_id", post.ID, "error", err)
		return 0, nil
	}
	return count, nil
}

// AddComment 发表评论
func (s *EngagementService) AddComment(ctx context.Context, taggedID string, userID uint, content string) (*CommentView, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrValidation
	}

	post, err := s.resolveStorePost(taggedID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: trimmed,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		logger.Warnw("engagement_comment_persist_degraded", "post_id", post.ID, "error", err)
		return s.synthesizeComment(taggedID, userID, trimmed), nil
	}

	s.notifyEngagement(ctx, constants.EngagementKindComment, post, userID, comment.ID)

	view := s.buildCommentViews(taggedID, []models.Comment{comment})
	return &view[0], nil
}

// synthesizeComment 落库失败时的本地合成评论，保证提交方仍能立即看到自己的评论
func (s *EngagementService) synthesizeComment(taggedID string, userID uint, content string) *CommentView {
	view := CommentView{
		LocalID:   uuid.NewString(),
		PostID:    taggedID,
		Content:   content,
		CreatedAt: time.Now(),
		Degraded:  true,
	}
	if user, err := s.userRepo.GetByID(userID); err == nil && user != nil {
		view.Author = CommentAuthor{ID: user.ID, Name: user.Name, Username: user.Username, AvatarURL: user.AvatarURL}
	} else {
		view.Author = CommentAuthor{ID: userID, Name: "Unknown"}
		view.AuthorDegraded = true
	}
	return &view
}

// ListComments 获取文章评论，作者信息批量查询；评论表不可用时返回空列表
func (s *EngagementService) ListComments(taggedID string) ([]CommentView, error) {
	post, err := s.resolveStorePost(taggedID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		logger.Warnw("engagement_comments_degraded", "post_id", post.ID, "error", err)
		return []CommentView{}, nil
	}
	return s.buildCommentViews(taggedID, comments), nil
}

// buildCommentViews 一次查询带出所有作者，作者缺失或查询失败时降级为占位
func (s *EngagementService) buildCommentViews(taggedID string, comments []models.Comment) []CommentView {
	ids := make([]uint, 0, len(comments))
	seen := map[uint]struct{}{}
	for _, comment := range comments {
		if _, dup := seen[comment.UserID]; dup {
			continue
		}
		seen[comment.UserID] = struct{}{}
		ids = append(ids, comment.UserID)
	}

	authors := map[uint]CommentAuthor{}
	degradedAll := false
	users, err := s.userRepo.ListByIDs(ids)
	if err != nil {
		logger.Warnw("engagement_comment_authors_degraded", "error", err)
		degradedAll = true
	} else {
		for _, user := range users {
			authors[user.ID] = CommentAuthor{
				ID:        user.ID,
				Name:      user.Name,
				Username:  user.Username,
				AvatarURL: user.AvatarURL,
			}
		}
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		view := CommentView{
			ID:        comment.ID,
			PostID:    taggedID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if author, ok := authors[comment.UserID]; ok && !degradedAll {
			view.Author = author
		} else {
			view.Author = CommentAuthor{ID: comment.UserID, Name: "Unknown"}
			view.AuthorDegraded = true
		}
		views = append(views, view)
	}
	return views
}

// notifyEngagement 通知失败只记日志，互动操作本身已经成功
func (s *EngagementService) notifyEngagement(ctx context.Context, kind string, post *models.Post, userID, commentID uint) {
	if s.notification == nil {
		return
	}
	userName := ""
	if user, err := s.userRepo.GetByID(userID); err == nil && user != nil {
		userName = user.Name
		if userName == "" {
			userName = user.Username
		}
	}
	if err := s.notification.NotifyEngagement(ctx, kind, post.ID, post.Title, userID, userName, commentID); err != nil {
		logger.Warnw("engagement_notify_failed", "kind", kind, "post_id", post.ID, "error", err)
	}
}

// degradedLikeResult 点赞表不可用时的乐观结果，计数按缓存列估算
func degradedLikeResult(cached int64) *LikeResult {
	return &LikeResult{
		Liked:         true,
		Count:         estimateLikeCount(cached, true),
		Degraded:      true,
		CountDegraded: true,
	}
}

func estimateLikeCount(cached int64, liked bool) int64 {
	if liked {
		return cached + 1
	}
	if cached > 0 {
		return cached - 1
	}
	return 0
}
