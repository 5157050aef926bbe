// internal/model/module.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModule はコース内のモジュールです。
// order_index はコース内で 1..N の連番 (重複・欠番なし)
type CourseModule struct {
	ModuleID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"module_id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_module_order,priority:1" json:"course_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	OrderIndex  int       `gorm:"not null;uniqueIndex:uq_module_order,priority:2" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

// モジュール作成リクエストDTO
// OrderIndex を省略した場合は末尾に追加
type PostModuleRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	OrderIndex  *int   `json:"order_index,omitempty"`
}

// モジュール更新（部分）リクエストDTO
type PatchModuleRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	OrderIndex  *int    `json:"order_index,omitempty"`
}
