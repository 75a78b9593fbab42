package models

import (
	"time"
)

// User 用户模型
// 密码列只进不出,任何读取路径都不得返回
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  *string   `gorm:"size:50" json:"username"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Role      string    `gorm:"size:20;not null;default:'user'" json:"role"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Avatar    *string   `gorm:"size:500" json:"avatar"`
	Status    string    `gorm:"size:20;not null;default:'active'" json:"status"`
	Data      JSONValue `gorm:"type:text;not null;default:'{}'" json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
