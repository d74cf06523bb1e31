package models

import "time"

// Category 分类表
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`               // 主键
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`   // 分类名（规范标签）
	CreatedAt time.Time `gorm:"index" json:"created_at"`            // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
