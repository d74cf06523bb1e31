package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/http/response"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"
	"github.com/wpc41205/my-personal-blog-project/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminPosts 获取文章列表 (Admin)
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	search := c.Query("search")
	category := c.Query("category")

	status := strings.TrimSpace(c.Query("status"))
	statusID := 0
	switch {
	case strings.EqualFold(status, constants.PostStatusPublished):
		statusID = constants.PostStatusPublishedID
	case strings.EqualFold(status, constants.PostStatusDraft):
		statusID = constants.PostStatusDraftID
	}

	posts, total, err := h.ContentService.ListStorePosts(repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: category,
		Search:   search,
		StatusID: statusID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, posts, pagination)
}

// GetAdminPost 获取文章详情 (Admin)，含草稿
func (h *Handler) GetAdminPost(c *gin.Context) {
	post, err := h.ContentService.GetPost(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		}
		return
	}
	response.Success(c, post)
}

// PostRequest 创建/更新文章请求
type PostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	Category    string `json:"category" binding:"required"`
	StatusID    int    `json:"status_id"`
	Date        string `json:"date"`
}

func (req PostRequest) toInput() (service.CreatePostInput, error) {
	input := service.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		Author:      req.Author,
		Category:    req.Category,
		StatusID:    req.StatusID,
	}
	if strings.TrimSpace(req.Date) != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return input, err
		}
		input.Date = &date
	}
	return input, nil
}

func respondPostWriteError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(c, response.CodeBadRequest, "error.post_validation_failed", nil)
	case errors.Is(err, service.ErrExternalReadOnly):
		respondError(c, response.CodeBadRequest, "error.post_readonly_source", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

// CreateAdminPost 创建文章 (Admin)
func (h *Handler) CreateAdminPost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.ContentService.CreatePost(c.Request.Context(), input)
	if err != nil {
		respondPostWriteError(c, err, "error.post_create_failed")
		return
	}
	response.Success(c, post)
}

// UpdateAdminPost 更新文章 (Admin)
func (h *Handler) UpdateAdminPost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.ContentService.UpdatePost(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondPostWriteError(c, err, "error.post_update_failed")
		return
	}
	response.Success(c, post)
}

// DeleteAdminPost 删除文章 (Admin)
func (h *Handler) DeleteAdminPost(c *gin.Context) {
	if err := h.ContentService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondPostWriteError(c, err, "error.post_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
