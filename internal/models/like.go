package models

import "time"

// PostLike 点赞表，(post_id, user_id) 唯一，存在即已赞
type PostLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                 // 主键
	PostID    uint      `gorm:"uniqueIndex:idx_post_user;not null" json:"post_id"`    // 文章 ID（本地源）
	UserID    uint      `gorm:"uniqueIndex:idx_post_user;not null" json:"user_id"`    // 点赞用户 ID
	CreatedAt time.Time `json:"created_at"`                                           // 创建时间
}

// TableName 指定表名
func (PostLike) TableName() string {
	return "post_likes"
}
