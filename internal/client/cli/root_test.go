package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mjimenezh/coursekeeper/internal/client/api"
	"github.com/mjimenezh/coursekeeper/internal/client/models"
	"github.com/mjimenezh/coursekeeper/internal/client/services"
	"github.com/mjimenezh/coursekeeper/internal/logging"
)

// stubClient is a minimal api.Client for driving the shell in tests.
type stubClient struct {
	lesson           *models.Lesson
	lastUpdateID     string
	lastUpdateLesson models.UpdateLessonRequest
	lastCreateCourse models.CreateCourseRequest
}

func (s *stubClient) Close() error               { return nil }
func (s *stubClient) Ping(context.Context) error { return nil }

func (s *stubClient) Login(context.Context, models.LoginRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{}, nil
}

func (s *stubClient) Register(context.Context, models.RegisterRequest) (*models.AuthResponse, error) {
	return &models.AuthResponse{}, nil
}

func (s *stubClient) SearchCourses(context.Context, string, string, int, int) (*models.CourseSearchResult, error) {
	return &models.CourseSearchResult{}, nil
}

func (s *stubClient) GetCourse(context.Context, string) (*models.Course, error) {
	return &models.Course{}, nil
}

func (s *stubClient) GetCourseSummary(context.Context, string) (*models.CourseSummary, error) {
	return &models.CourseSummary{}, nil
}

func (s *stubClient) CreateCourse(_ context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	s.lastCreateCourse = req
	return &models.Course{ID: "c-new", Title: req.Title}, nil
}

func (s *stubClient) UpdateCourse(context.Context, string, models.UpdateCourseRequest) (*models.Course, error) {
	return &models.Course{}, nil
}

func (s *stubClient) DeleteCourse(context.Context, string) error { return nil }

func (s *stubClient) PublishCourse(context.Context, string) error { return nil }

func (s *stubClient) UnpublishCourse(context.Context, string) error { return nil }

func (s *stubClient) LessonsByCourse(context.Context, string) ([]models.Lesson, error) {
	return nil, nil
}

func (s *stubClient) DeletedLessonsByCourse(context.Context, string) ([]models.Lesson, error) {
	return nil, nil
}

func (s *stubClient) GetLesson(context.Context, string) (*models.Lesson, error) {
	return s.lesson, nil
}

func (s *stubClient) CreateLesson(context.Context, models.CreateLessonRequest) (*models.Lesson, error) {
	return &models.Lesson{}, nil
}

func (s *stubClient) UpdateLesson(_ context.Context, id string, req models.UpdateLessonRequest) (*models.Lesson, error) {
	s.lastUpdateID = id
	s.lastUpdateLesson = req
	return &models.Lesson{ID: id, Title: req.Title, Order: req.Order}, nil
}

func (s *stubClient) DeleteLesson(context.Context, string) error { return nil }

func (s *stubClient) HardDeleteLesson(context.Context, string) error { return nil }

func (s *stubClient) ReorderLesson(context.Context, string, int) error { return nil }

func (s *stubClient) RestoreLesson(context.Context, string) error { return nil }

func newTestApp(input string, client api.Client) *App {
	return &App{
		log:       logging.Nop(),
		apiClient: client,
		session:   services.NewSessionService(client, nil, nil),
		courses:   services.NewCourseStore(client, nil),
		lessons:   services.NewLessonStore(client, nil),
		dashboard: services.NewDashboardService(client, nil),
		reader:    bufio.NewReader(strings.NewReader(input)),
	}
}

func TestRoot_EditLessonKeepsCurrentOrder(t *testing.T) {
	client := &stubClient{
		lesson: &models.Lesson{ID: "l1", CourseID: "c1", Title: "Old title", Order: 5},
	}
	a := newTestApp("editlesson l1\nNew title\nexit\n", client)
	a.currentCourse = "c1"

	a.Root(context.Background())

	assert.Equal(t, "l1", client.lastUpdateID)
	// The rename carries the lesson's existing position, not a zero.
	assert.Equal(t, models.UpdateLessonRequest{Title: "New title", Order: 5}, client.lastUpdateLesson)
}

func TestRoot_PromptsShareCommandReader(t *testing.T) {
	client := &stubClient{}
	// Command, prompt answer, and next command interleave on one stream.
	a := newTestApp("create\nMi curso\nexit\n", client)

	a.Root(context.Background())

	assert.Equal(t, "Mi curso", client.lastCreateCourse.Title)
}

func TestRoot_EOFTerminates(t *testing.T) {
	a := newTestApp("help\n", &stubClient{})
	a.Root(context.Background())
}
