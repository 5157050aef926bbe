// cmd/seed/main.go
// 開発用データ投入: 管理者・教師・学生のプロフィールとコースを1件作成し、教師を割り当てる
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go_course_keep/internal/config"
	"go_course_keep/internal/model"
	"go_course_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	courseID, err := seed(context.Background(), db)
	if err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Printf("course_id=%s admin=seed-admin teacher=seed-teacher student=seed-student\n", courseID)
}

func seed(ctx context.Context, db *gorm.DB) (uuid.UUID, error) {
	profileRepo := repository.NewGormProfileRepository()
	courseRepo := repository.NewGormCourseRepository()

	course := &model.Course{CourseID: uuid.New(), Title: "Seed course"}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profiles := []*model.Profile{
			{ActorID: "seed-admin", Role: model.RoleAdmin, DisplayName: "Admin"},
			{ActorID: "seed-teacher", Role: model.RoleTeacher, DisplayName: "Teacher"},
			{ActorID: "seed-student", Role: model.RoleStudent, DisplayName: "Student"},
		}
		for _, p := range profiles {
			// 再実行時は既存のプロフィールをそのまま使う
			_, err := profileRepo.FindByActorID(ctx, tx, p.ActorID)
			if err == nil {
				continue
			}
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			if err := profileRepo.Create(ctx, tx, p); err != nil {
				return err
			}
		}
		if err := courseRepo.Create(ctx, tx, course); err != nil {
			return err
		}
		return courseRepo.AddTeacher(ctx, tx, course.CourseID, "seed-teacher")
	})
	if err != nil {
		return uuid.Nil, err
	}
	return course.CourseID, nil
}
