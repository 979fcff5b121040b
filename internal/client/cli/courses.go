package cli

import (
	"context"
	"fmt"
	"os"
)

const timeFormat = "2006-01-02 15:04"

// showCourses renders the course list screen. Entering the screen resets
// the listing to the unfiltered first page; search and page commands
// refine it from there.
func (a *App) showCourses(ctx context.Context) {
	a.courses.Search(ctx, "", "", 1, a.courses.PageSize())
	a.printCourseList()
}

func (a *App) printCourseList() {
	if msg := a.courses.Err(); msg != "" {
		fmt.Println(msg)
		return
	}

	courses := a.courses.Courses()
	fmt.Printf("-- Courses (page %d/%d, %d total) --\n",
		a.courses.Page(), a.courses.TotalPages(), a.courses.TotalCount())
	if len(courses) == 0 {
		fmt.Println("No courses found.")
		return
	}
	for _, c := range courses {
		fmt.Printf("%s  [%-9s]  %s  (updated %s)\n",
			c.ID, c.Status, c.Title, c.UpdatedAt.Format(timeFormat))
	}
}

// showCourseDetail renders the summary projection of one course together
// with its active lessons.
func (a *App) showCourseDetail(ctx context.Context, id string) {
	a.currentCourse = id

	if !a.courses.LoadSummary(ctx, id) {
		fmt.Println(a.courses.Err())
		return
	}

	s := a.courses.Current()
	fmt.Printf("-- %s [%s] --\n", s.Title, s.Status)
	fmt.Printf("Lessons: %d, last modified %s\n", s.TotalLessons, s.LastModified.Format(timeFormat))

	if !a.lessons.LoadByCourse(ctx, id) {
		fmt.Println(a.lessons.Err())
		return
	}
	for _, l := range a.lessons.Lessons() {
		fmt.Printf("  %2d. %s  (%s)\n", l.Order, l.Title, l.ID)
	}
}

func (a *App) searchCourses(ctx context.Context) {
	query, err := GetSimpleText(a.reader, "Search text (empty for all):", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	status, err := GetSimpleText(a.reader, "Status filter (Draft/Published, empty for all):", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	a.courses.Search(ctx, query, status, 1, a.courses.PageSize())
	a.printCourseList()
}

// gotoPage re-runs the last search on a different page.
func (a *App) gotoPage(ctx context.Context, page int) {
	if page < 1 {
		fmt.Println("Page must be >= 1")
		return
	}
	a.courses.Search(ctx, a.courses.Query(), a.courses.Status(), page, a.courses.PageSize())
	a.printCourseList()
}

func (a *App) createCourse(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Course title:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	course := a.courses.Create(ctx, title)
	if course == nil {
		fmt.Println(a.courses.Err())
		return
	}
	fmt.Printf("Created course %s\n", course.ID)
	a.printCourseList()
}

func (a *App) renameCourse(ctx context.Context, id string) {
	title, err := GetSimpleText(a.reader, "New title:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if a.courses.Update(ctx, id, title) == nil {
		fmt.Println(a.courses.Err())
		return
	}
	fmt.Println("Course updated")
	a.printCourseList()
}

func (a *App) deleteCourse(ctx context.Context, id string) {
	confirm, err := GetSimpleText(a.reader, "Delete course "+id+"? (y/N)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Println("Cancelled")
		return
	}

	if !a.courses.Delete(ctx, id) {
		fmt.Println(a.courses.Err())
		return
	}
	fmt.Println("Course deleted")
	a.printCourseList()
}

func (a *App) publishCourse(ctx context.Context, id string) {
	if !a.courses.Publish(ctx, id) {
		fmt.Println(a.courses.Err())
		return
	}
	fmt.Println("Course published")
	a.printCourseList()
}

func (a *App) unpublishCourse(ctx context.Context, id string) {
	if !a.courses.Unpublish(ctx, id) {
		fmt.Println(a.courses.Err())
		return
	}
	fmt.Println("Course unpublished")
	a.printCourseList()
}
