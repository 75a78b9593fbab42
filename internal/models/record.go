package models

import (
	"time"
)

// Record 通用键值记录模型,对应data表
// name列唯一,并带辅助索引
type Record struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_data_name" json:"name"`
	Data      JSONValue `gorm:"type:text;not null;default:'{}'" json:"data"`
	Status    int       `gorm:"not null;default:0" json:"status"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名
func (Record) TableName() string {
	return "data"
}
