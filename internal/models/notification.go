package models

import "time"

// Notification 后台通知表
type Notification struct {
	ID        uint      `gorm:"primarykey" json:"id"`                   // 主键
	Message   string    `gorm:"not null" json:"message"`                // 通知内容
	PostID    *uint     `gorm:"index" json:"post_id"`                   // 关联文章（可空）
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`  // 是否已读
	CreatedAt time.Time `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}
