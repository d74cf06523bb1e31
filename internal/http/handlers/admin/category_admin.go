package admin

import (
	"errors"
	"strconv"

	"github.com/wpc41205/my-personal-blog-project/internal/http/response"
	"github.com/wpc41205/my-personal-blog-project/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminCategories 获取分类列表 (Admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func parseCategoryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

func respondCategoryWriteError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	case errors.Is(err, service.ErrCategoryExists):
		respondError(c, response.CodeBadRequest, "error.category_exists", nil)
	case errors.Is(err, service.ErrCategoryInUse):
		respondError(c, response.CodeBadRequest, "error.category_in_use", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.category_not_found", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

// CreateAdminCategory 创建分类 (Admin)
func (h *Handler) CreateAdminCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondCategoryWriteError(c, err, "error.category_create_failed")
		return
	}
	response.Success(c, category)
}

// UpdateAdminCategory 更新分类 (Admin)
func (h *Handler) UpdateAdminCategory(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondCategoryWriteError(c, err, "error.category_update_failed")
		return
	}
	response.Success(c, category)
}

// DeleteAdminCategory 删除分类 (Admin)，仍被文章引用时拒绝
func (h *Handler) DeleteAdminCategory(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}

	if err := h.CategoryService.Delete(c.Request.Context(), id); err != nil {
		respondCategoryWriteError(c, err, "error.category_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
