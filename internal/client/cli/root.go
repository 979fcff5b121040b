package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.session.User(); user != nil {
		s = user.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to CourseKeeper (type 'help' for commands)")

	a.navigate(ctx, a.landingPath())

	// Commands and prompt answers come through the same buffered reader;
	// a second reader over stdin would swallow buffered-ahead input.
	for {
		fmt.Printf("ck %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				break
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "login":
			a.Login(ctx)
		case "register":
			a.Register(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)

		case "dashboard":
			a.navigate(ctx, "/dashboard")
		case "courses":
			a.navigate(ctx, "/courses")
		case "open":
			if len(args) == 0 {
				fmt.Println("Usage: open <course-id>")
				continue
			}
			a.navigate(ctx, "/courses/"+args[0])
		case "trash":
			if len(args) == 0 {
				fmt.Println("Usage: trash <course-id>")
				continue
			}
			a.trashCourse = args[0]
			a.navigate(ctx, "/trash")

		case "search":
			a.searchCourses(ctx)
		case "page":
			if len(args) == 0 {
				fmt.Println("Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("Usage: page <n>")
				continue
			}
			a.gotoPage(ctx, n)
		case "create":
			a.createCourse(ctx)
		case "rename":
			if len(args) == 0 {
				fmt.Println("Usage: rename <course-id>")
				continue
			}
			a.renameCourse(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <course-id>")
				continue
			}
			a.deleteCourse(ctx, args[0])
		case "publish":
			if len(args) == 0 {
				fmt.Println("Usage: publish <course-id>")
				continue
			}
			a.publishCourse(ctx, args[0])
		case "unpublish":
			if len(args) == 0 {
				fmt.Println("Usage: unpublish <course-id>")
				continue
			}
			a.unpublishCourse(ctx, args[0])

		case "addlesson":
			a.addLesson(ctx)
		case "editlesson":
			if len(args) == 0 {
				fmt.Println("Usage: editlesson <lesson-id>")
				continue
			}
			a.editLesson(ctx, args[0])
		case "dellesson":
			if len(args) == 0 {
				fmt.Println("Usage: dellesson <lesson-id>")
				continue
			}
			a.deleteLesson(ctx, args[0])
		case "reorder":
			if len(args) < 2 {
				fmt.Println("Usage: reorder <lesson-id> <new-order>")
				continue
			}
			order, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Usage: reorder <lesson-id> <new-order>")
				continue
			}
			a.reorderLesson(ctx, args[0], order)
		case "restore":
			if len(args) == 0 {
				fmt.Println("Usage: restore <lesson-id>")
				continue
			}
			a.restoreLesson(ctx, args[0])
		case "purge":
			if len(args) == 0 {
				fmt.Println("Usage: purge <lesson-id>")
				continue
			}
			a.hardDeleteLesson(ctx, args[0])

		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Println("Screens:  dashboard, courses, open <id>, trash <course-id>")
		fmt.Println("Courses:  search, page <n>, create, rename <id>, delete <id>, publish <id>, unpublish <id>")
		fmt.Println("Lessons:  addlesson, editlesson <id>, dellesson <id>, reorder <id> <order>")
		fmt.Println("Trash:    restore <lesson-id>, purge <lesson-id>")
		fmt.Println("Session:  whoami, logout, exit")
	} else {
		fmt.Println("Available commands: login, register, exit")
	}
}
