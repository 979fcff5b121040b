package cli

import (
	"context"
	"fmt"
	"os"
)

// showTrash renders the soft-deleted lessons of the course selected with
// the trash command. The route guard has already verified the admin role
// by the time this runs.
func (a *App) showTrash(ctx context.Context) {
	if a.trashCourse == "" {
		fmt.Println("Usage: trash <course-id>")
		return
	}

	if !a.lessons.LoadDeletedByCourse(ctx, a.trashCourse) {
		fmt.Println(a.lessons.Err())
		return
	}
	a.printDeletedLessons()
}

func (a *App) printDeletedLessons() {
	deleted := a.lessons.Deleted()
	fmt.Printf("-- Trash for course %s --\n", a.trashCourse)
	if len(deleted) == 0 {
		fmt.Println("Trash is empty.")
		return
	}
	for _, l := range deleted {
		fmt.Printf("  %s  %s  (deleted, was position %d)\n", l.ID, l.Title, l.Order)
	}
}

func (a *App) restoreLesson(ctx context.Context, id string) {
	if a.trashCourse == "" {
		fmt.Println("Open a trash screen first: trash <course-id>")
		return
	}

	if !a.lessons.Restore(ctx, id, a.trashCourse) {
		fmt.Println(a.lessons.Err())
		return
	}
	fmt.Println("Lesson restored")
	a.printDeletedLessons()
}

func (a *App) hardDeleteLesson(ctx context.Context, id string) {
	if a.trashCourse == "" {
		fmt.Println("Open a trash screen first: trash <course-id>")
		return
	}

	confirm, err := GetSimpleText(a.reader, "Permanently delete lesson "+id+"? This cannot be undone. (y/N)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Println("Cancelled")
		return
	}

	if !a.lessons.HardDelete(ctx, id, a.trashCourse) {
		fmt.Println(a.lessons.Err())
		return
	}
	fmt.Println("Lesson permanently deleted")
	a.printDeletedLessons()
}
