package cli

import (
	"strconv"

	"careops-cli/internal/api"

	"github.com/spf13/cobra"
)

func newWorkspacesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "Workspace management",
	}

	cmd.AddCommand(newWorkspacesListCmd(app))
	cmd.AddCommand(newWorkspacesCreateCmd(app))
	cmd.AddCommand(newWorkspacesShowCmd(app))
	cmd.AddCommand(newWorkspacesActivateCmd(app))

	return cmd
}

func newWorkspacesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaces, err := app.client.ListWorkspaces(cmd.Context(), token)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": workspaces})
		},
	}
}

func newWorkspacesCreateCmd(app *App) *cobra.Command {
	var name, address, timezone, contactEmail string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			ws, err := app.client.CreateWorkspace(cmd.Context(), token, api.WorkspaceCreateRequest{
				Name:         name,
				Address:      address,
				Timezone:     timezone,
				ContactEmail: contactEmail,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": ws,
				"_hints": []string{
					"careops contacts create --workspace " + strconv.Itoa(ws.ID) + " --name ...",
					"careops workspaces activate " + strconv.Itoa(ws.ID),
				},
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Business name")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "Timezone (UTC, EST, PST, IST)")
	cmd.Flags().StringVar(&contactEmail, "contact-email", "", "Contact email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("contact-email")
	return cmd
}

func newWorkspacesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <workspace-id>",
		Short: "Show one workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			ws, err := app.client.GetWorkspace(cmd.Context(), token, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ws})
		},
	}
}

func newWorkspacesActivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <workspace-id>",
		Short: "Activate a workspace once setup prerequisites are met",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := app.client.ActivateWorkspace(cmd.Context(), token, id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"workspace": id, "active": true},
			})
		},
	}
}
