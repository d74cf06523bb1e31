package models

import "time"

// AdminUser 管理员表
type AdminUser struct {
	ID           uint       `gorm:"primarykey" json:"id"`                 // 主键
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`    // 登录邮箱
	Name         string     `gorm:"default:''" json:"name"`               // 展示名
	Username     string     `gorm:"uniqueIndex;not null" json:"username"` // 用户名
	Bio          string     `json:"bio"`                                  // 简介
	AvatarURL    string     `gorm:"type:varchar(1000)" json:"avatar_url"` // 头像
	Role         string     `gorm:"default:'editor';index" json:"role"`   // 角色（admin/editor）
	PasswordHash string     `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	LastLoginAt  *time.Time `json:"last_login_at"`                        // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt    time.Time  `json:"updated_at"`                           // 更新时间
}

// TableName 指定表名
func (AdminUser) TableName() string {
	return "admin_users"
}
