// internal/model/lesson.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson はモジュール内のレッスンです。order_index はモジュール内で連番
type Lesson struct {
	LessonID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	ModuleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_lesson_order,priority:1" json:"module_id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `json:"content"`
	OrderIndex int       `gorm:"not null;uniqueIndex:uq_lesson_order,priority:2" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// レッスン作成リクエストDTO
type PostLessonRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Content    string `json:"content"`
	OrderIndex *int   `json:"order_index,omitempty"`
}

// レッスン更新（部分）リクエストDTO
type PatchLessonRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content    *string `json:"content,omitempty"`
	OrderIndex *int    `json:"order_index,omitempty"`
}
