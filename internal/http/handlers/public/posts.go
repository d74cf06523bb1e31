package public

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/wpc41205/my-personal-blog-project/internal/http/response"
	"github.com/wpc41205/my-personal-blog-project/internal/service"

	"github.com/gin-gonic/gin"
)

// 列表与搜索直接返回聚合结果原始结构，兼容既有前端的
// {posts, currentPage, totalPages, totalPosts} 约定。

// GetPosts 公开文章列表（双源聚合）
func (h *Handler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	category := strings.TrimSpace(c.Query("category"))
	keyword := strings.TrimSpace(c.Query("keyword"))

	feed, err := h.ContentService.ListPosts(c.Request.Context(), service.ListPostsOptions{
		Page:     page,
		PageSize: limit,
		Category: category,
		Keyword:  keyword,
	})
	if err != nil {
		respondPostReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// SearchPosts 公开文章搜索
func (h *Handler) SearchPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	keyword := strings.TrimSpace(c.Query("keyword"))

	feed, err := h.ContentService.SearchPosts(c.Request.Context(), keyword, page, limit)
	if err != nil {
		respondPostReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// GetPost 公开文章详情，ID 为带来源前缀的聚合 ID
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.ContentService.GetPost(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondPostReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetCategories 公开分类选项
func (h *Handler) GetCategories(c *gin.Context) {
	options, err := h.ContentService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	c.JSON(http.StatusOK, options)
}
