// internal/model/course.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	CourseID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"course_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseTeacher はコースと担当教師の多対多の関連です。
// 教師がコースのコンテンツを編集できるかどうかはこのテーブルだけで決まります。
type CourseTeacher struct {
	CourseID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"course_id"`
	TeacherID string    `gorm:"type:varchar(255);primaryKey;index" json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (CourseTeacher) TableName() string {
	return "course_teachers"
}

// 担当教師一覧レスポンスDTO
type CourseTeachersResponse struct {
	CourseID   uuid.UUID `json:"course_id"`
	TeacherIDs []string  `json:"teacher_ids"`
}
