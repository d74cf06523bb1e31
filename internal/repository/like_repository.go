package repository

import (
	"errors"

	"github.com/wpc41205/my-personal-blog-project/internal/models"

	"gorm.io/gorm"
)

// LikeRepository 点赞数据访问接口
type LikeRepository interface {
	GetByPostAndUser(postID, userID uint) (*models.PostLike, error)
	Create(like *models.PostLike) error
	DeleteByPostAndUser(postID, userID uint) error
	CountByPost(postID uint) (int64, error)
	CountByPosts(postIDs []uint) (map[uint]int64, error)
	DeleteByPost(postID uint) error
}

// GormLikeRepository GORM 实现
type GormLikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository 创建点赞仓库
func NewLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// GetByPostAndUser 查询用户对文章的点赞记录
func (r *GormLikeRepository) GetByPostAndUser(postID, userID uint) (*models.PostLike, error) {
	var like models.PostLike
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Create 创建点赞记录，(post_id, user_id) 唯一索引兜底并发重复
func (r *GormLikeRepository) Create(like *models.PostLike) error {
	return r.db.Create(like).Error
}

// DeleteByPostAndUser 取消点赞
func (r *GormLikeRepository) DeleteByPostAndUser(postID, userID uint) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{}).Error
}

// CountByPost 统计文章点赞数
func (r *GormLikeRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByPosts 批量统计多篇文章的点赞数
func (r *GormLikeRepository) CountByPosts(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}
	type row struct {
		PostID uint
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.PostLike{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, item := range rows {
		counts[item.PostID] = item.Total
	}
	return counts, nil
}

// DeleteByPost 删除文章下全部点赞
func (r *GormLikeRepository) DeleteByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error
}
