package models

import "time"

// Comment 评论表
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	PostID    uint      `gorm:"index;not null" json:"post_id"`   // 文章 ID（本地源）
	UserID    uint      `gorm:"index;not null" json:"user_id"`   // 评论用户 ID
	Content   string    `gorm:"not null" json:"content"`         // 评论内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // 创建时间
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
