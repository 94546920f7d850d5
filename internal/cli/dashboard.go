package cli

import "github.com/spf13/cobra"

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Fetch the workspace dashboard snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}
			snap, err := app.client.Dashboard(cmd.Context(), token, workspaceID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": snap})
		},
	}
}
