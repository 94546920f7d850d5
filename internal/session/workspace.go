package session

import "careops-cli/internal/model"

// WorkspaceSelection is the in-memory "current workspace" shared by the
// workspace-scoped pages. It is never persisted: a restart always goes back
// through the workspace list. Ownership of the selected record is the
// backend's problem; the client trusts it on every request.
type WorkspaceSelection struct {
	current *model.Workspace
}

func (w *WorkspaceSelection) Current() *model.Workspace { return w.current }

// Set replaces the selection. There is no explicit clear; a selection is
// only ever replaced by the next one.
func (w *WorkspaceSelection) Set(ws model.Workspace) {
	w.current = &ws
}

func (w *WorkspaceSelection) Selected() bool { return w.current != nil }
