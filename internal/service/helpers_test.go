// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"go_course_keep/internal/model"
	"go_course_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はトランザクションを張るためだけのインメモリ SQLite を返します。
// DB 操作そのものはリポジトリのモックが受け持つ
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// テストごとに別のインメモリ DB。接続は 1 本に固定する
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// setupMigratedDB は本物のリポジトリで使うスキーマ付きの DB を返します
func setupMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, repository.AutoMigrate(db))
	return db
}

type fixture struct {
	db       *gorm.DB
	courseID uuid.UUID
	guard    AccessGuard
}

const (
	adminID    = "admin-1"
	teacherID  = "teacher-1"
	outsiderID = "teacher-2"
	studentID  = "student-1"
)

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	return seedFixture(t, setupMigratedDB(t))
}

// seedFixture はプロフィール 4 件 (admin / 担当教師 / 担当外教師 / student) と
// コース 1 件を作成します
func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	ctx := context.Background()

	profileRepo := repository.NewGormProfileRepository()
	courseRepo := repository.NewGormCourseRepository()

	for _, p := range []*model.Profile{
		{ActorID: adminID, Role: model.RoleAdmin},
		{ActorID: teacherID, Role: model.RoleTeacher},
		{ActorID: outsiderID, Role: model.RoleTeacher},
		{ActorID: studentID, Role: model.RoleStudent},
	} {
		require.NoError(t, profileRepo.Create(ctx, db, p))
	}

	course := &model.Course{CourseID: uuid.New(), Title: "Go 入門"}
	require.NoError(t, courseRepo.Create(ctx, db, course))
	require.NoError(t, courseRepo.AddTeacher(ctx, db, course.CourseID, teacherID))

	return &fixture{
		db:       db,
		courseID: course.CourseID,
		guard:    NewAccessGuard(db, profileRepo, courseRepo),
	}
}
