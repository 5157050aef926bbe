// internal/handlers/routes.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Module *ModuleHandler
	Lesson *LessonHandler
	Course *CourseHandler
}

// RegisterRoutes は /api/v1 配下のルートを登録します。
// actorMiddleware はアクターIDをコンテキストにセットするミドルウェア (JWT または開発用)
func RegisterRoutes(r chi.Router, h Handlers, actorMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(actorMiddleware)

		r.Route("/courses/{course_id}", func(r chi.Router) {
			r.Post("/modules", h.Module.PostModule)
			r.Get("/modules", h.Module.GetModules)

			r.Get("/teachers", h.Course.GetTeachers)
			r.Put("/teachers/{teacher_id}", h.Course.PutTeacher)
			r.Delete("/teachers/{teacher_id}", h.Course.DeleteTeacher)
		})

		r.Route("/modules/{module_id}", func(r chi.Router) {
			r.Patch("/", h.Module.PatchModule)
			r.Delete("/", h.Module.DeleteModule)

			r.Post("/lessons", h.Lesson.PostLesson)
			r.Get("/lessons", h.Lesson.GetLessons)
		})

		r.Route("/lessons/{lesson_id}", func(r chi.Router) {
			r.Patch("/", h.Lesson.PatchLesson)
			r.Delete("/", h.Lesson.DeleteLesson)
		})
	})
}
