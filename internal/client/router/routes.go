package router

import "strings"

// Route is one navigable screen.
type Route struct {
	Path string
	Name string
	Meta Meta
}

// Routes is the navigable surface, in declaration order. "/courses/{id}" is
// matched by prefix; everything else matches exactly.
var Routes = []Route{
	{Path: "/login", Name: "login", Meta: Meta{RequiresGuest: true}},
	{Path: "/register", Name: "register", Meta: Meta{RequiresGuest: true}},
	{Path: "/dashboard", Name: "dashboard", Meta: Meta{RequiresAuth: true}},
	{Path: "/courses", Name: "courses", Meta: Meta{RequiresAuth: true}},
	{Path: "/courses/{id}", Name: "course-detail", Meta: Meta{RequiresAuth: true}},
	{Path: "/trash", Name: "trash", Meta: Meta{RequiresAuth: true, RequiresAdmin: true}},
}

// Find resolves a concrete path to its route. Unknown paths return false.
func Find(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
		if r.Path == "/courses/{id}" && strings.HasPrefix(path, "/courses/") && path != "/courses" {
			return r, true
		}
	}
	return Route{}, false
}
