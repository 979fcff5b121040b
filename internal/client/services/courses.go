package services

import (
	"context"
	"errors"
	"sync"

	"github.com/mjimenezh/coursekeeper/internal/client/api"
	"github.com/mjimenezh/coursekeeper/internal/client/models"
	"github.com/mjimenezh/coursekeeper/internal/logging"
)

const (
	msgCoursesLoad     = "Error al cargar los cursos"
	msgCourseLoad      = "Error al cargar el curso"
	msgCourseSummary   = "Error al cargar el resumen del curso"
	msgCourseCreate    = "Error al crear el curso"
	msgCourseUpdate    = "Error al actualizar el curso"
	msgCourseDelete    = "Error al eliminar el curso"
	msgCoursePublish   = "Error al publicar el curso"
	msgCourseUnpublish = "Error al despublicar el curso"
)

const defaultPageSize = 10

// CourseStore keeps the local view of the course list in sync with the
// backend. Every successful mutation re-issues the last search instead of
// patching the cached list; the server stays the source of truth.
//
// The loading flag is advisory: operations are not mutually exclusive, and
// when two overlap the response resolving last wins the final state.
type CourseStore struct {
	client api.Client
	log    logging.Logger

	mu         sync.RWMutex
	courses    []models.Course
	current    *models.CourseSummary
	query      string
	status     string
	page       int
	pageSize   int
	totalCount int
	totalPages int
	loading    bool
	errMsg     string
}

func NewCourseStore(client api.Client, log logging.Logger) *CourseStore {
	if log == nil {
		log = logging.Nop()
	}
	return &CourseStore{
		client:   client,
		log:      log.With("component", "courses"),
		page:     1,
		pageSize: defaultPageSize,
	}
}

// Search queries the course list and replaces the cached page wholesale.
// On failure the previous page stays visible and only the error message
// changes (stale-but-visible). The parameters become the ones any later
// mutation refetch re-uses.
func (s *CourseStore) Search(ctx context.Context, query, status string, page, size int) bool {
	s.begin()

	result, err := s.client.SearchCourses(ctx, query, status, page, size)
	if err != nil {
		s.log.Warn(ctx, "course search failed", "query", query, "status", status, "error", err)
		s.finish(messageFor(err, msgCoursesLoad))
		return false
	}

	s.mu.Lock()
	s.courses = result.Courses
	s.totalCount = result.TotalCount
	s.totalPages = result.TotalPages
	s.page = result.Page
	s.pageSize = result.PageSize
	s.query = query
	s.status = status
	s.loading = false
	s.errMsg = ""
	s.mu.Unlock()
	return true
}

// refetch re-issues the search with the query parameters current at this
// moment, not at the time the triggering mutation started.
func (s *CourseStore) refetch(ctx context.Context) {
	s.mu.RLock()
	query, status, page, size := s.query, s.status, s.page, s.pageSize
	s.mu.RUnlock()
	s.Search(ctx, query, status, page, size)
}

// Get fetches a single course. The result is returned, not cached.
func (s *CourseStore) Get(ctx context.Context, id string) *models.Course {
	s.begin()

	course, err := s.client.GetCourse(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "course fetch failed", "id", id, "error", err)
		s.finish(messageFor(err, msgCourseLoad))
		return nil
	}
	s.finish("")
	return course
}

// LoadSummary fetches the summary projection for a course and caches it as
// the current detail view.
func (s *CourseStore) LoadSummary(ctx context.Context, id string) bool {
	s.begin()

	summary, err := s.client.GetCourseSummary(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "course summary fetch failed", "id", id, "error", err)
		s.finish(messageFor(err, msgCourseSummary))
		return false
	}

	s.mu.Lock()
	s.current = summary
	s.loading = false
	s.errMsg = ""
	s.mu.Unlock()
	return true
}

// Create adds a course and refetches the current list page.
func (s *CourseStore) Create(ctx context.Context, title string) *models.Course {
	s.begin()

	course, err := s.client.CreateCourse(ctx, models.CreateCourseRequest{Title: title})
	if err != nil {
		s.log.Warn(ctx, "course create failed", "error", err)
		s.finish(messageFor(err, msgCourseCreate))
		return nil
	}
	s.refetch(ctx)
	return course
}

// Update renames a course and refetches the current list page.
func (s *CourseStore) Update(ctx context.Context, id, title string) *models.Course {
	s.begin()

	course, err := s.client.UpdateCourse(ctx, id, models.UpdateCourseRequest{Title: title})
	if err != nil {
		s.log.Warn(ctx, "course update failed", "id", id, "error", err)
		s.finish(messageFor(err, msgCourseUpdate))
		return nil
	}
	s.refetch(ctx)
	return course
}

// Delete removes a course and refetches the current list page.
func (s *CourseStore) Delete(ctx context.Context, id string) bool {
	s.begin()

	if err := s.client.DeleteCourse(ctx, id); err != nil {
		s.log.Warn(ctx, "course delete failed", "id", id, "error", err)
		s.finish(messageFor(err, msgCourseDelete))
		return false
	}
	s.refetch(ctx)
	return true
}

// Publish transitions a course to Published and refetches the list.
func (s *CourseStore) Publish(ctx context.Context, id string) bool {
	s.begin()

	if err := s.client.PublishCourse(ctx, id); err != nil {
		s.log.Warn(ctx, "course publish failed", "id", id, "error", err)
		s.finish(messageFor(err, msgCoursePublish))
		return false
	}
	s.refetch(ctx)
	return true
}

// Unpublish transitions a course back to Draft and refetches the list.
func (s *CourseStore) Unpublish(ctx context.Context, id string) bool {
	s.begin()

	if err := s.client.UnpublishCourse(ctx, id); err != nil {
		s.log.Warn(ctx, "course unpublish failed", "id", id, "error", err)
		s.finish(messageFor(err, msgCourseUnpublish))
		return false
	}
	s.refetch(ctx)
	return true
}

func (s *CourseStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *CourseStore) finish(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
}

// Courses returns a copy of the cached list page.
func (s *CourseStore) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Course(nil), s.courses...)
}

// Current returns the cached summary projection, or nil.
func (s *CourseStore) Current() *models.CourseSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Query returns the last successfully applied search text.
func (s *CourseStore) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Status returns the last successfully applied status filter.
func (s *CourseStore) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *CourseStore) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

func (s *CourseStore) PageSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageSize
}

func (s *CourseStore) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalCount
}

func (s *CourseStore) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPages
}

func (s *CourseStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the user-facing message of the last failed operation, or ""
// after a success.
func (s *CourseStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// messageFor picks the user-facing text for err: the server-supplied
// message when the response was well formed, the operation's localized
// default otherwise.
func messageFor(err error, fallback string) string {
	if errors.Is(err, api.ErrUnavailable) {
		return fallback
	}
	if m := api.ServerMessage(err); m != "" {
		return m
	}
	return fallback
}
