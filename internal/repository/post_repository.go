package repository

import (
	"errors"
	"strings"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/models"

	"gorm.io/gorm"
)

// PostRepository 文章数据访问接口
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, int64, error)
	ListAll(onlyPublished bool) ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
	CountByCategory(categoryID uint) (int64, error)
	UpdateLikesCount(id uint, count int64) error
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// List 文章列表
func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, int64, error) {
	var posts []models.Post
	query := r.db.Model(&models.Post{})

	if filter.OnlyPublished {
		query = query.Where("status_id = ?", constants.PostStatusPublishedID)
	}
	if filter.StatusID != 0 {
		query = query.Where("status_id = ?", filter.StatusID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		sub := r.db.Model(&models.Category{}).
			Select("id").
			Where(caseInsensitiveEqualCondition("name"), category)
		query = query.Where("category_id IN (?)", sub)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildKeywordLikeCondition(r.db, []string{"title", "description", "content"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "date DESC, id ASC"
	}

	if err := query.Order(orderBy).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListAll 获取全部文章，供聚合层在内存中合并排序
func (r *GormPostRepository) ListAll(onlyPublished bool) ([]models.Post, error) {
	query := r.db.Model(&models.Post{})
	if onlyPublished {
		query = query.Where("status_id = ?", constants.PostStatusPublishedID)
	}
	var posts []models.Post
	if err := query.Order("date DESC, id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID 根据 ID 获取文章
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create 创建文章
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update 更新文章
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete 删除文章
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// CountByCategory 统计某分类下文章数
func (r *GormPostRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateLikesCount 刷新点赞数缓存列
func (r *GormPostRepository) UpdateLikesCount(id uint, count int64) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).Update("likes_count", count).Error
}
