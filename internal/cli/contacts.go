package cli

import (
	"careops-cli/internal/api"

	"github.com/spf13/cobra"
)

func newContactsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Contacts within a workspace",
	}

	cmd.AddCommand(newContactsListCmd(app))
	cmd.AddCommand(newContactsCreateCmd(app))

	return cmd
}

func newContactsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}
			contacts, err := app.client.ListContacts(cmd.Context(), token, workspaceID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": contacts})
		},
	}
}

func newContactsCreateCmd(app *App) *cobra.Command {
	var name, email, phone string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}
			contact, err := app.client.CreateContact(cmd.Context(), token, workspaceID, api.ContactCreateRequest{
				Name:  name,
				Email: email,
				Phone: phone,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": contact})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Contact name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
