package session

import (
	"testing"

	"careops-cli/internal/model"
)

func TestWorkspaceSelection(t *testing.T) {
	var sel WorkspaceSelection

	if sel.Selected() {
		t.Fatalf("expected no selection initially")
	}
	if sel.Current() != nil {
		t.Fatalf("expected nil current workspace")
	}

	sel.Set(model.Workspace{ID: 1, Name: "Clinic A"})
	if !sel.Selected() {
		t.Fatalf("expected a selection after Set")
	}
	if got := sel.Current().Name; got != "Clinic A" {
		t.Fatalf("expected Clinic A; got %q", got)
	}

	sel.Set(model.Workspace{ID: 2, Name: "Clinic B"})
	if got := sel.Current().ID; got != 2 {
		t.Fatalf("expected replacement selection; got id %d", got)
	}
}
