package session

// AccessLevel describes what a page requires before it may render.
type AccessLevel int

const (
	// AccessPublic pages render for anyone (login, register, public booking).
	AccessPublic AccessLevel = iota
	// AccessAuthenticated pages require a token (workspace list).
	AccessAuthenticated
	// AccessWorkspace pages require a token and a selected workspace
	// (setup, dashboard, inbox).
	AccessWorkspace
)

// Route is a navigation decision from the guard.
type Route int

const (
	RouteStay Route = iota
	RouteLogin
	RouteWorkspaces
)

// Decide centralizes the redirect-on-missing-state checks that would
// otherwise be scattered across every page: no token sends the user to
// login, no selection sends workspace-scoped pages to the workspace list.
func Decide(hasToken, hasWorkspace bool, level AccessLevel) Route {
	switch level {
	case AccessAuthenticated:
		if !hasToken {
			return RouteLogin
		}
	case AccessWorkspace:
		if !hasToken {
			return RouteLogin
		}
		if !hasWorkspace {
			return RouteWorkspaces
		}
	}
	return RouteStay
}
