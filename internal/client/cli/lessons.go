package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mjimenezh/coursekeeper/internal/client/models"
)

// requireCourse makes sure a course detail screen is open; lesson commands
// operate on the lessons of the currently opened course.
func (a *App) requireCourse() bool {
	if a.currentCourse == "" {
		fmt.Println("Open a course first: open <course-id>")
		return false
	}
	return true
}

func (a *App) addLesson(ctx context.Context) {
	if !a.requireCourse() {
		return
	}

	title, err := GetSimpleText(a.reader, "Lesson title:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	order, err := GetInt(a.reader, "Position (1-based):", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	lesson := a.lessons.Create(ctx, models.CreateLessonRequest{
		CourseID: a.currentCourse,
		Title:    title,
		Order:    order,
	})
	if lesson == nil {
		fmt.Println(a.lessons.Err())
		return
	}
	fmt.Printf("Created lesson %s\n", lesson.ID)
	a.printLessons()
}

func (a *App) editLesson(ctx context.Context, id string) {
	if !a.requireCourse() {
		return
	}

	// The update endpoint takes title and order together; reuse the
	// lesson's current position so a rename does not move it.
	lesson := a.lessons.Get(ctx, id)
	if lesson == nil {
		fmt.Println(a.lessons.Err())
		return
	}

	title, err := GetSimpleText(a.reader, "New title:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	updated := a.lessons.Update(ctx, id, models.UpdateLessonRequest{Title: title, Order: lesson.Order}, a.currentCourse)
	if updated == nil {
		fmt.Println(a.lessons.Err())
		return
	}
	fmt.Println("Lesson updated")
	a.printLessons()
}

func (a *App) deleteLesson(ctx context.Context, id string) {
	if !a.requireCourse() {
		return
	}

	if !a.lessons.Delete(ctx, id, a.currentCourse) {
		fmt.Println(a.lessons.Err())
		return
	}
	fmt.Println("Lesson moved to trash (restore it from 'trash " + a.currentCourse + "')")
	a.printLessons()
}

func (a *App) reorderLesson(ctx context.Context, id string, newOrder int) {
	if !a.requireCourse() {
		return
	}

	if !a.lessons.Reorder(ctx, id, newOrder, a.currentCourse) {
		fmt.Println(a.lessons.Err())
		return
	}
	a.printLessons()
}

func (a *App) printLessons() {
	lessons := a.lessons.Lessons()
	if len(lessons) == 0 {
		fmt.Println("No lessons.")
		return
	}
	for _, l := range lessons {
		fmt.Printf("  %2d. %s  (%s)\n", l.Order, l.Title, l.ID)
	}
}
