package services

import (
	"context"
	"sync"

	"github.com/mjimenezh/coursekeeper/internal/client/models"
)

type searchCall struct {
	Query    string
	Status   string
	Page     int
	PageSize int
}

// fakeClient is a hand-rolled api.Client double. Responses are assigned per
// test; Last* fields and call logs capture what the service under test sent.
type fakeClient struct {
	mu sync.Mutex

	LoginResp    *models.AuthResponse
	LoginErr     error
	LastLogin    models.LoginRequest
	RegisterResp *models.AuthResponse
	RegisterErr  error
	LastRegister models.RegisterRequest

	SearchResp  *models.CourseSearchResult
	SearchErr   error
	SearchFn    func(query, status string, page, pageSize int) (*models.CourseSearchResult, error)
	SearchCalls []searchCall

	CourseResp   *models.Course
	CourseErr    error
	SummaryResp  *models.CourseSummary
	SummaryErr   error
	SummaryFn    func(id string) (*models.CourseSummary, error)
	LastCourseID string

	CreateCourseResp *models.Course
	CreateCourseErr  error
	LastCreateCourse models.CreateCourseRequest
	UpdateCourseResp *models.Course
	UpdateCourseErr  error
	LastUpdateCourse models.UpdateCourseRequest
	DeleteCourseErr  error
	PublishErr       error
	UnpublishErr     error

	LessonsResp      []models.Lesson
	LessonsErr       error
	LessonsCalls     []string
	DeletedResp      []models.Lesson
	DeletedErr       error
	DeletedCalls     []string
	LessonResp       *models.Lesson
	LessonErr        error
	CreateLessonResp *models.Lesson
	CreateLessonErr  error
	LastCreateLesson models.CreateLessonRequest
	UpdateLessonResp *models.Lesson
	UpdateLessonErr  error
	LastUpdateLesson models.UpdateLessonRequest
	DeleteLessonErr  error
	HardDeleteErr    error
	ReorderErr       error
	LastReorderID    string
	LastReorderOrder int
	RestoreErr       error
	LastLessonID     string
}

func (f *fakeClient) Close() error               { return nil }
func (f *fakeClient) Ping(context.Context) error { return nil }

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) SearchCourses(_ context.Context, query, status string, page, pageSize int) (*models.CourseSearchResult, error) {
	f.mu.Lock()
	f.SearchCalls = append(f.SearchCalls, searchCall{Query: query, Status: status, Page: page, PageSize: pageSize})
	fn := f.SearchFn
	resp, err := f.SearchResp, f.SearchErr
	f.mu.Unlock()
	if fn != nil {
		return fn(query, status, page, pageSize)
	}
	return resp, err
}

func (f *fakeClient) lastSearch() searchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.SearchCalls[len(f.SearchCalls)-1]
}

func (f *fakeClient) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.SearchCalls)
}

func (f *fakeClient) GetCourse(_ context.Context, id string) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCourseID = id
	return f.CourseResp, f.CourseErr
}

func (f *fakeClient) GetCourseSummary(_ context.Context, id string) (*models.CourseSummary, error) {
	f.mu.Lock()
	f.LastCourseID = id
	fn := f.SummaryFn
	resp, err := f.SummaryResp, f.SummaryErr
	f.mu.Unlock()
	if fn != nil {
		return fn(id)
	}
	return resp, err
}

func (f *fakeClient) CreateCourse(_ context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCreateCourse = req
	return f.CreateCourseResp, f.CreateCourseErr
}

func (f *fakeClient) UpdateCourse(_ context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCourseID = id
	f.LastUpdateCourse = req
	return f.UpdateCourseResp, f.UpdateCourseErr
}

func (f *fakeClient) DeleteCourse(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCourseID = id
	return f.DeleteCourseErr
}

func (f *fakeClient) PublishCourse(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCourseID = id
	return f.PublishErr
}

func (f *fakeClient) UnpublishCourse(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCourseID = id
	return f.UnpublishErr
}

func (f *fakeClient) LessonsByCourse(_ context.Context, courseID string) ([]models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LessonsCalls = append(f.LessonsCalls, courseID)
	return f.LessonsResp, f.LessonsErr
}

func (f *fakeClient) DeletedLessonsByCourse(_ context.Context, courseID string) ([]models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeletedCalls = append(f.DeletedCalls, courseID)
	return f.DeletedResp, f.DeletedErr
}

func (f *fakeClient) GetLesson(_ context.Context, id string) (*models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLessonID = id
	return f.LessonResp, f.LessonErr
}

func (f *fakeClient) CreateLesson(_ context.Context, req models.CreateLessonRequest) (*models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCreateLesson = req
	return f.CreateLessonResp, f.CreateLessonErr
}

func (f *fakeClient) UpdateLesson(_ context.Context, id string, req models.UpdateLessonRequest) (*models.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLessonID = id
	f.LastUpdateLesson = req
	return f.UpdateLessonResp, f.UpdateLessonErr
}

func (f *fakeClient) DeleteLesson(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLessonID = id
	return f.DeleteLessonErr
}

func (f *fakeClient) HardDeleteLesson(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLessonID = id
	return f.HardDeleteErr
}

func (f *fakeClient) ReorderLesson(_ context.Context, id string, newOrder int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastReorderID = id
	f.LastReorderOrder = newOrder
	return f.ReorderErr
}

func (f *fakeClient) RestoreLesson(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLessonID = id
	return f.RestoreErr
}
