package models

import "time"

// Post 文章表（本地内容源）
type Post struct {
	ID          uint      `gorm:"primarykey" json:"id"`                      // 主键
	Title       string    `gorm:"not null" json:"title"`                     // 标题
	Description string    `json:"description"`                               // 摘要
	Content     string    `json:"content"`                                   // 正文
	Image       string    `gorm:"type:varchar(1000)" json:"image"`           // 封面图 URL 或 data URI
	Author      string    `json:"author"`                                    // 作者展示名
	CategoryID  uint      `gorm:"index" json:"category_id"`                  // 分类 ID
	StatusID    int       `gorm:"not null;default:1;index" json:"status_id"` // 状态（1=Published 2=Draft）
	Date        time.Time `gorm:"index" json:"date"`                         // 发布时间，聚合排序键
	LikesCount  int64     `gorm:"not null;default:0" json:"likes_count"`     // 点赞数缓存，以 post_likes 实时计数为准
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                // 更新时间
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
