package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mjimenezh/coursekeeper/internal/client/router"
)

// navigate moves the shell to path, passing through the route guard first.
// A redirect decision is followed (the target is re-evaluated, so a
// redirect chain settles in at most a couple of hops) and then the target
// screen is rendered.
func (a *App) navigate(ctx context.Context, path string) {
	for hops := 0; hops < 3; hops++ {
		route, ok := router.Find(path)
		if !ok {
			fmt.Println("Unknown screen:", path)
			return
		}

		decision := router.Decide(route.Meta, a.session)
		if !decision.Allowed {
			a.log.Debug(ctx, "navigation redirected", "from", path, "to", decision.RedirectTo)
			fmt.Println("Redirected to", decision.RedirectTo)
			path = decision.RedirectTo
			continue
		}

		a.path = path
		a.render(ctx, route.Name)
		return
	}
}

func (a *App) render(ctx context.Context, screen string) {
	switch screen {
	case "login":
		fmt.Println("-- Sign in -- (type 'login', or 'register' to create an account)")
	case "register":
		fmt.Println("-- Register -- (type 'register')")
	case "dashboard":
		a.showDashboard(ctx)
	case "courses":
		a.showCourses(ctx)
	case "course-detail":
		a.showCourseDetail(ctx, strings.TrimPrefix(a.path, "/courses/"))
	case "trash":
		a.showTrash(ctx)
	}
}
