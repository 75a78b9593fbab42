package models

import (
	"time"
)

// Project 项目模型
// owner_id是建议性外键,不做引用完整性约束,悬空时联表字段为null
type Project struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	OwnerID     uint      `gorm:"not null" json:"owner_id"`
	Status      string    `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}
