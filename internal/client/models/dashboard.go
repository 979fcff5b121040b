package models

import "time"

// RecentCourse is one row of the dashboard's recent-courses listing.
type RecentCourse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	TotalLessons int       `json:"totalLessons"`
	LastModified time.Time `json:"lastModified"`
}

// DashboardMetrics aggregates course counts and recent activity.
// RecentCourses holds at most the 5 most-recently-updated courses and
// TotalLessons is accumulated over that capped subset only.
type DashboardMetrics struct {
	TotalCourses     int            `json:"totalCourses"`
	PublishedCourses int            `json:"publishedCourses"`
	DraftCourses     int            `json:"draftCourses"`
	TotalLessons     int            `json:"totalLessons"`
	RecentCourses    []RecentCourse `json:"recentCourses"`
}
