package cli

import (
	"context"
	"fmt"
)

func (a *App) showDashboard(ctx context.Context) {
	if !a.dashboard.Fetch(ctx) {
		fmt.Println(a.dashboard.Err())
		return
	}

	m := a.dashboard.Metrics()
	fmt.Println("-- Dashboard --")
	fmt.Printf("Courses: %d total (%d published, %d draft)\n",
		m.TotalCourses, m.PublishedCourses, m.DraftCourses)
	fmt.Printf("Lessons in recent courses: %d\n", m.TotalLessons)

	if len(m.RecentCourses) == 0 {
		fmt.Println("No recent activity.")
		return
	}
	fmt.Println("Recently updated:")
	for _, c := range m.RecentCourses {
		fmt.Printf("  %s  [%-9s]  %s  %d lessons  (modified %s)\n",
			c.ID, c.Status, c.Title, c.TotalLessons, c.LastModified.Format(timeFormat))
	}
}
