package cli

import (
	"errors"
	"strings"

	"careops-cli/internal/api"

	"github.com/spf13/cobra"
)

func newInboxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Workspace inbox",
	}

	cmd.AddCommand(newInboxConversationsCmd(app))
	cmd.AddCommand(newInboxConversationCmd(app))
	cmd.AddCommand(newInboxSendCmd(app))

	return cmd
}

func newInboxConversationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conversations",
		Short: "List conversations with their messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}
			convs, err := app.client.ListConversations(cmd.Context(), token, workspaceID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": convs})
		},
	}
}

func newInboxConversationCmd(app *App) *cobra.Command {
	var conversationID int

	cmd := &cobra.Command{
		Use:   "conversation",
		Short: "Show one conversation with its messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}
			conv, err := app.client.GetConversation(cmd.Context(), token, workspaceID, conversationID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": conv})
		},
	}

	cmd.Flags().IntVar(&conversationID, "conversation", 0, "Conversation id")
	_ = cmd.MarkFlagRequired("conversation")
	return cmd
}

func newInboxSendCmd(app *App) *cobra.Command {
	var conversationID int
	var message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a staff message to a conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(message) == "" {
				return writeErr(cmd, errors.New("message is empty"))
			}
			receipt, err := app.client.SendMessage(cmd.Context(), token, workspaceID, conversationID, api.MessageSendRequest{
				Content:    message,
				SenderType: "staff",
				Channel:    "system",
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": receipt})
		},
	}

	cmd.Flags().IntVar(&conversationID, "conversation", 0, "Conversation id")
	cmd.Flags().StringVar(&message, "message", "", "Message content")
	_ = cmd.MarkFlagRequired("conversation")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
