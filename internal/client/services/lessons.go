package services

import (
	"context"
	"sync"

	"github.com/mjimenezh/coursekeeper/internal/client/api"
	"github.com/mjimenezh/coursekeeper/internal/client/models"
	"github.com/mjimenezh/coursekeeper/internal/logging"
)

const (
	msgLessonsLoad        = "Error al cargar las lecciones"
	msgLessonLoad         = "Error al cargar la lección"
	msgLessonCreate       = "Error al crear la lección"
	msgLessonUpdate       = "Error al actualizar la lección"
	msgLessonDelete       = "Error al eliminar la lección"
	msgLessonReorder      = "Error al reordenar la lección"
	msgDeletedLessonsLoad = "Error al cargar lecciones eliminadas"
	msgLessonRestore      = "Error al restaurar la lección"
	msgLessonHardDelete   = "Error al eliminar permanentemente la lección"
)

// LessonStore keeps the per-course lesson views. Lessons are soft-deleted
// by default: Delete removes a lesson from the active view (learned on the
// automatic refetch), while the record stays recoverable through the
// deleted view. The deleted view is only ever populated by an explicit
// LoadDeletedByCourse or by the lifecycle operations that touch it
// (Restore, HardDelete); ordinary operations never refresh it.
//
// Restore, HardDelete and LoadDeletedByCourse are admin operations on the
// server. The store does not gate them by role; it surfaces whatever the
// server answers.
type LessonStore struct {
	client api.Client
	log    logging.Logger

	mu      sync.RWMutex
	lessons []models.Lesson
	deleted []models.Lesson
	current *models.Lesson
	loading bool
	errMsg  string
}

func NewLessonStore(client api.Client, log logging.Logger) *LessonStore {
	if log == nil {
		log = logging.Nop()
	}
	return &LessonStore{client: client, log: log.With("component", "lessons")}
}

// LoadByCourse replaces the active lesson view with the course's current
// active lessons, in server order.
func (s *LessonStore) LoadByCourse(ctx context.Context, courseID string) bool {
	s.begin()

	lessons, err := s.client.LessonsByCourse(ctx, courseID)
	if err != nil {
		s.log.Warn(ctx, "lessons fetch failed", "course_id", courseID, "error", err)
		s.finish(messageFor(err, msgLessonsLoad))
		return false
	}

	s.mu.Lock()
	s.lessons = lessons
	s.loading = false
	s.errMsg = ""
	s.mu.Unlock()
	return true
}

// LoadDeletedByCourse replaces the deleted lesson view for a course.
func (s *LessonStore) LoadDeletedByCourse(ctx context.Context, courseID string) bool {
	s.begin()

	lessons, err := s.client.DeletedLessonsByCourse(ctx, courseID)
	if err != nil {
		s.log.Warn(ctx, "deleted lessons fetch failed", "course_id", courseID, "error", err)
		s.finish(messageFor(err, msgDeletedLessonsLoad))
		return false
	}

	s.mu.Lock()
	s.deleted = lessons
	s.loading = false
	s.errMsg = ""
	s.mu.Unlock()
	return true
}

// Get fetches a single lesson and caches it as the current detail view.
func (s *LessonStore) Get(ctx context.Context, id string) *models.Lesson {
	s.begin()

	lesson, err := s.client.GetLesson(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "lesson fetch failed", "id", id, "error", err)
		s.finish(messageFor(err, msgLessonLoad))
		return nil
	}

	s.mu.Lock()
	s.current = lesson
	s.loading = false
	s.errMsg = ""
	s.mu.Unlock()
	return lesson
}

// Create adds a lesson and refetches the course's active view.
func (s *LessonStore) Create(ctx context.Context, req models.CreateLessonRequest) *models.Lesson {
	s.begin()

	lesson, err := s.client.CreateLesson(ctx, req)
	if err != nil {
		s.log.Warn(ctx, "lesson create failed", "course_id", req.CourseID, "error", err)
		s.finish(messageFor(err, msgLessonCreate))
		return nil
	}
	s.LoadByCourse(ctx, req.CourseID)
	return lesson
}

// Update edits a lesson and refetches the course's active view.
func (s *LessonStore) Update(ctx context.Context, id string, req models.UpdateLessonRequest, courseID string) *models.Lesson {
	s.begin()

	lesson, err := s.client.UpdateLesson(ctx, id, req)
	if err != nil {
		s.log.Warn(ctx, "lesson update failed", "id", id, "error", err)
		s.finish(messageFor(err, msgLessonUpdate))
		return nil
	}
	s.LoadByCourse(ctx, courseID)
	return lesson
}

// Delete soft-deletes a lesson and refetches the active view, from which
// the lesson will be absent. The deleted view is deliberately untouched.
func (s *LessonStore) Delete(ctx context.Context, id, courseID string) bool {
	s.begin()

	if err := s.client.DeleteLesson(ctx, id); err != nil {
		s.log.Warn(ctx, "lesson delete failed", "id", id, "error", err)
		s.finish(messageFor(err, msgLessonDelete))
		return false
	}
	s.LoadByCourse(ctx, courseID)
	return true
}

// Reorder moves a lesson to a new position. The server owns order
// normalization; the refetch picks up the authoritative ordering.
func (s *LessonStore) Reorder(ctx context.Context, id string, newOrder int, courseID string) bool {
	s.begin()

	if err := s.client.ReorderLesson(ctx, id, newOrder); err != nil {
		s.log.Warn(ctx, "lesson reorder failed", "id", id, "error", err)
		s.finish(messageFor(err, msgLessonReorder))
		return false
	}
	s.LoadByCourse(ctx, courseID)
	return true
}

// Restore reverses a soft delete and refreshes both the active and the
// deleted views.
func (s *LessonStore) Restore(ctx context.Context, id, courseID string) bool {
	s.begin()

	if err := s.client.RestoreLesson(ctx, id); err != nil {
		s.log.Warn(ctx, "lesson restore failed", "id", id, "error", err)
		s.finish(messageFor(err, msgLessonRestore))
		return false
	}
	s.LoadByCourse(ctx, courseID)
	s.LoadDeletedByCourse(ctx, courseID)
	return true
}

// HardDelete irreversibly removes a soft-deleted lesson and refreshes the
// deleted view only.
func (s *LessonStore) HardDelete(ctx context.Context, id, courseID string) bool {
	s.begin()

	if err := s.client.HardDeleteLesson(ctx, id); err != nil {
		s.log.Warn(ctx, "lesson hard delete failed", "id", id, "error", err)
		s.finish(messageFor(err, msgLessonHardDelete))
		return false
	}
	s.LoadDeletedByCourse(ctx, courseID)
	return true
}

// Clear drops the active and detail views, e.g. when leaving a course
// screen. The deleted view keeps its last explicit load.
func (s *LessonStore) Clear() {
	s.mu.Lock()
	s.lessons = nil
	s.current = nil
	s.mu.Unlock()
}

func (s *LessonStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *LessonStore) finish(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
}

// Lessons returns a copy of the active view.
func (s *LessonStore) Lessons() []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Lesson(nil), s.lessons...)
}

// Deleted returns a copy of the deleted view.
func (s *LessonStore) Deleted() []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Lesson(nil), s.deleted...)
}

// Current returns the cached detail view, or nil.
func (s *LessonStore) Current() *models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	l := *s.current
	return &l
}

func (s *LessonStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *LessonStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
