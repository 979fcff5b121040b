package models

import "time"

// CourseStatus is the publication state of a course.
type CourseStatus string

const (
	StatusDraft     CourseStatus = "Draft"
	StatusPublished CourseStatus = "Published"
)

// Course is a course record as returned by the backend.
type Course struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Status    CourseStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CourseSummary is a read-only projection of a course with aggregate lesson
// data. It is not kept in sync with Course automatically.
type CourseSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	TotalLessons int       `json:"totalLessons"`
	LastModified time.Time `json:"lastModified"`
}

// CourseSearchResult is the paginated payload of GET /courses/search.
// Page is 1-based; TotalPages = ceil(TotalCount/PageSize).
type CourseSearchResult struct {
	Courses    []Course `json:"courses"`
	TotalCount int      `json:"totalCount"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

// CreateCourseRequest is the payload for POST /courses.
type CreateCourseRequest struct {
	Title string `json:"title"`
}

// UpdateCourseRequest is the payload for PUT /courses/{id}.
type UpdateCourseRequest struct {
	Title string `json:"title"`
}
