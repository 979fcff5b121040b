package services

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mjimenezh/coursekeeper/internal/client/api"
	"github.com/mjimenezh/coursekeeper/internal/client/models"
	"github.com/mjimenezh/coursekeeper/internal/logging"
)

const msgDashboardLoad = "Error loading dashboard metrics"

const (
	// dashboardPageSize caps each of the two status-partitioned list
	// queries the aggregation is built from.
	dashboardPageSize = 100

	// recentCoursesCap bounds the recent-courses listing. TotalLessons is
	// accumulated over this capped subset only, not over all courses.
	recentCoursesCap = 5
)

// DashboardService derives summary metrics by fanning out to the course
// search and per-course summary endpoints. The two list queries fail
// together (no partial metrics); the per-course summary fetches are
// individually fault-tolerant.
type DashboardService struct {
	client api.Client
	log    logging.Logger

	mu      sync.RWMutex
	metrics models.DashboardMetrics
	loading bool
	errMsg  string
}

func NewDashboardService(client api.Client, log logging.Logger) *DashboardService {
	if log == nil {
		log = logging.Nop()
	}
	return &DashboardService{client: client, log: log.With("component", "dashboard")}
}

// Fetch recomputes the metrics. Draft and Published course lists are
// requested in parallel and awaited jointly: if either fails the whole
// aggregation fails and the previous metrics stay in place.
func (s *DashboardService) Fetch(ctx context.Context) bool {
	s.begin()

	var draft, published *models.CourseSearchResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		draft, err = s.client.SearchCourses(gctx, "", string(models.StatusDraft), 1, dashboardPageSize)
		return err
	})
	g.Go(func() error {
		var err error
		published, err = s.client.SearchCourses(gctx, "", string(models.StatusPublished), 1, dashboardPageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn(ctx, "dashboard list fetch failed", "error", err)
		s.finish(messageFor(err, msgDashboardLoad))
		return false
	}

	all := make([]models.Course, 0, len(draft.Courses)+len(published.Courses))
	all = append(all, draft.Courses...)
	all = append(all, published.Courses...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})
	recent := all
	if len(recent) > recentCoursesCap {
		recent = recent[:recentCoursesCap]
	}

	// Summaries are awaited jointly but wrapped individually: a failing
	// summary contributes a zero lesson count and the course's own
	// timestamp instead of aborting the aggregation.
	summaries := make([]*models.CourseSummary, len(recent))
	var wg sync.WaitGroup
	for i, course := range recent {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			summary, err := s.client.GetCourseSummary(ctx, id)
			if err != nil {
				s.log.Debug(ctx, "course summary unavailable", "id", id, "error", err)
				return
			}
			summaries[i] = summary
		}(i, course.ID)
	}
	wg.Wait()

	totalLessons := 0
	recentCourses := make([]models.RecentCourse, 0, len(recent))
	for i, course := range recent {
		row := models.RecentCourse{
			ID:           course.ID,
			Title:        course.Title,
			Status:       string(course.Status),
			LastModified: course.UpdatedAt,
		}
		if summary := summaries[i]; summary != nil {
			row.TotalLessons = summary.TotalLessons
			if !summary.LastModified.IsZero() {
				row.LastModified = summary.LastModified
			}
		}
		totalLessons += row.TotalLessons
		recentCourses = append(recentCourses, row)
	}

	s.mu.Lock()
	s.metrics = models.DashboardMetrics{
		TotalCourses:     len(all),
		PublishedCourses: len(published.Courses),
		DraftCourses:     len(draft.Courses),
		TotalLessons:     totalLessons,
		RecentCourses:    recentCourses,
	}
	s.loading = false
	s.errMsg = ""
	s.mu.Unlock()
	return true
}

func (s *DashboardService) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *DashboardService) finish(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
}

// Metrics returns the last successfully computed metrics.
func (s *DashboardService) Metrics() models.DashboardMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.metrics
	m.RecentCourses = append([]models.RecentCourse(nil), s.metrics.RecentCourses...)
	return m
}

func (s *DashboardService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *DashboardService) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
