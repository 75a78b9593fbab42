package models

import (
	"time"
)

// Task 任务模型
// 七个JSON附属列承载半结构化负载,更新时整体替换而不做深合并
type Task struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      int        `gorm:"not null;default:0" json:"status"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Data        JSONValue  `gorm:"type:text;not null;default:'{}'" json:"data"`
	Attachments JSONValue  `gorm:"type:text;not null;default:'{}'" json:"attachments"`
	Comments    JSONValue  `gorm:"type:text;not null;default:'{}'" json:"comments"`
	Tags        JSONValue  `gorm:"type:text;not null;default:'{}'" json:"tags"`
	Labels      JSONValue  `gorm:"type:text;not null;default:'{}'" json:"labels"`
	Assignees   JSONValue  `gorm:"type:text;not null;default:'{}'" json:"assignees"`
	Subtasks    JSONValue  `gorm:"type:text;not null;default:'{}'" json:"subtasks"`
	Priority    int        `gorm:"not null;default:0" json:"priority"`
	Type        string     `gorm:"size:20;not null;default:'task'" json:"type"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// 关联
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名
func (Task) TableName() string {
	return "tasks"
}
