package service

import (
	"context"
	"strings"

	"github.com/wpc41205/my-personal-blog-project/internal/cache"
	"github.com/wpc41205/my-personal-blog-project/internal/logger"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"
)

// CategoryService 分类后台管理服务
type CategoryService struct {
	repo     repository.CategoryRepository
	postRepo repository.PostRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, postRepo repository.PostRepository) *CategoryService {
	return &CategoryService{repo: repo, postRepo: postRepo}
}

// List 获取分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// Get 获取单个分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类，名称大小写不敏感去重
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrValidation
	}

	count, err := s.repo.CountByName(trimmed, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	category := models.Category{Name: trimmed}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	s.invalidateCategoryCache(ctx)
	return &category, nil
}

// Update 重命名分类
func (s *CategoryService) Update(ctx context.Context, id uint, name string) (*models.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrValidation
	}

	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountByName(trimmed, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	category.Name = trimmed
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	s.invalidateCategoryCache(ctx)
	return category, nil
}

// Delete 删除分类，仍有文章引用时拒绝
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	count, err := s.postRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCategoryCache(ctx)
	return nil
}

func (s *CategoryService) invalidateCategoryCache(ctx context.Context) {
	if err := cache.DelCategories(ctx); err != nil {
		logger.Warnw("category_cache_invalidate_failed", "error", err)
	}
	if err := cache.InvalidateFeeds(ctx); err != nil {
		logger.Warnw("category_feed_cache_invalidate_failed", "error", err)
	}
}
