package public

import (
	"github.com/wpc41205/my-personal-blog-project/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPostComments 公开评论列表
func (h *Handler) GetPostComments(c *gin.Context) {
	views, err := h.EngagementService.ListComments(c.Param("id"))
	if err != nil {
		respondEngagementError(c, err, "error.post_fetch_failed")
		return
	}
	response.Success(c, views)
}

// GetPostLikes 公开点赞数
func (h *Handler) GetPostLikes(c *gin.Context) {
	count, err := h.EngagementService.LikeCount(c.Param("id"))
	if err != nil {
		respondEngagementError(c, err, "error.post_fetch_failed")
		return
	}
	response.Success(c, gin.H{"count": count})
}

// ToggleLike 点赞开关（读者）
func (h *Handler) ToggleLike(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	result, err := h.EngagementService.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondEngagementError(c, err, "error.internal")
		return
	}
	response.Success(c, result)
}

// GetLikeStatus 当前用户是否已赞（读者）
func (h *Handler) GetLikeStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	liked, err := h.EngagementService.HasLiked(c.Param("id"), userID)
	if err != nil {
		respondEngagementError(c, err, "error.internal")
		return
	}
	response.Success(c, gin.H{"liked": liked})
}

// AddCommentRequest 发表评论请求
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment 发表评论（读者）
func (h *Handler) AddComment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	view, err := h.EngagementService.AddComment(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		respondEngagementError(c, err, "error.comment_create_failed")
		return
	}
	response.Success(c, view)
}
