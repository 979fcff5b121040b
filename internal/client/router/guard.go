// Package router holds the client's navigable route surface and the
// authorization guard consulted on every screen change.
package router

// Redirect targets used by the guard.
const (
	LoginPath   = "/login"
	LandingPath = "/courses"
)

// Meta is a route's access requirements.
type Meta struct {
	RequiresAuth  bool
	RequiresGuest bool
	RequiresAdmin bool
}

// Session is the read-only session view the guard consumes.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Decision is the guard's verdict: either navigation is allowed, or the
// caller must redirect to RedirectTo.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision            { return Decision{Allowed: true} }
func redirect(p string) Decision { return Decision{RedirectTo: p} }

// Decide evaluates the rules in fixed order; the first match wins:
//
//  1. auth-only route, unauthenticated session  -> redirect to login
//  2. guest-only route, authenticated session   -> redirect to landing
//  3. admin-only route, session without Admin   -> redirect to landing
//  4. otherwise                                 -> allow
//
// Rule 3 checks the admin fact only: it does not imply rule 1, so an
// admin-only route is expected to also set RequiresAuth in the route table.
func Decide(meta Meta, session Session) Decision {
	switch {
	case meta.RequiresAuth && !session.IsAuthenticated():
		return redirect(LoginPath)
	case meta.RequiresGuest && session.IsAuthenticated():
		return redirect(LandingPath)
	case meta.RequiresAdmin && !session.IsAdmin():
		return redirect(LandingPath)
	default:
		return allow()
	}
}
