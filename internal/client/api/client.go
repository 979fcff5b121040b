// Package api defines the typed client for the CourseKeeper backend.
// The Client interface carries one method per REST endpoint; services
// depend on the interface so tests can substitute fakes.
package api

import (
	"context"

	"github.com/mjimenezh/coursekeeper/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	SearchCourses(ctx context.Context, query string, status string, page int, pageSize int) (*models.CourseSearchResult, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	GetCourseSummary(ctx context.Context, id string) (*models.CourseSummary, error)
	CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	PublishCourse(ctx context.Context, id string) error
	UnpublishCourse(ctx context.Context, id string) error

	LessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error)
	DeletedLessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error)
	GetLesson(ctx context.Context, id string) (*models.Lesson, error)
	CreateLesson(ctx context.Context, req models.CreateLessonRequest) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, id string, req models.UpdateLessonRequest) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id string) error
	HardDeleteLesson(ctx context.Context, id string) error
	ReorderLesson(ctx context.Context, id string, newOrder int) error
	RestoreLesson(ctx context.Context, id string) error
}
