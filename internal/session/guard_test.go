package session

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		hasToken     bool
		hasWorkspace bool
		level        AccessLevel
		want         Route
	}{
		{"public always stays", false, false, AccessPublic, RouteStay},
		{"public stays when authenticated", true, true, AccessPublic, RouteStay},
		{"authenticated without token goes to login", false, false, AccessAuthenticated, RouteLogin},
		{"authenticated with token stays", true, false, AccessAuthenticated, RouteStay},
		{"workspace without token goes to login", false, false, AccessWorkspace, RouteLogin},
		{"workspace without selection goes to list", true, false, AccessWorkspace, RouteWorkspaces},
		{"workspace with both stays", true, true, AccessWorkspace, RouteStay},
		// A selection without a token still means login first.
		{"workspace with selection but no token", false, true, AccessWorkspace, RouteLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.hasToken, tt.hasWorkspace, tt.level); got != tt.want {
				t.Fatalf("expected route %v; got %v", tt.want, got)
			}
		})
	}
}
