package models

import (
	"time"
)

// Sprint 迭代模型
type Sprint struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      int       `gorm:"not null;default:0" json:"status"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	Data        JSONValue `gorm:"type:text;not null;default:'{}'" json:"data"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名
func (Sprint) TableName() string {
	return "sprints"
}
