package models

import "time"

// Lesson is a lesson record as returned by the backend. Order values are
// unique and contiguous within a course's active lesson set; the server is
// authoritative for reordering. Soft-deleted lessons are not flagged on the
// record itself: they simply move to the deleted listing.
type Lesson struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateLessonRequest is the payload for POST /lessons.
type CreateLessonRequest struct {
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
}

// UpdateLessonRequest is the payload for PUT /lessons/{id}.
type UpdateLessonRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}
