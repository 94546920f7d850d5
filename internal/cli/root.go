package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"careops-cli/internal/api"
	"careops-cli/internal/config"
	"careops-cli/internal/format"
	"careops-cli/internal/logging"
	"careops-cli/internal/session"
	"careops-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App carries flag values plus the wired dependencies for one invocation.
type App struct {
	APIBaseURL  string
	WorkspaceID int
	PrettyJSON  bool

	cfg     config.Config
	client  *api.Client
	sess    *session.Session
	logger  *zap.Logger
	selects session.WorkspaceSelection
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "careops",
		Short:        "CareOps operations client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  careops

  # Scriptable commands
  careops login --email you@example.com --password secret
  careops workspaces list
  careops dashboard --workspace 3

  # Public booking flow (no account needed)
  careops book --workspace 3 --name "Dana" --email dana@example.com --type Consultation --date 2026-09-01 --time 09:00
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if app.APIBaseURL != "" {
			cfg.APIBaseURL = app.APIBaseURL
		}
		app.cfg = cfg
		app.client = api.NewClient(cfg.APIBaseURL)

		app.sess = session.New(cfg.Dir)
		if err := app.sess.Load(); err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		logger, err := logging.New(cfg.LogFile)
		if err != nil {
			return err
		}
		app.logger = logger
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.logger != nil {
			_ = app.logger.Sync()
		}
	}

	cmd.PersistentFlags().StringVar(&app.APIBaseURL, "api", envOr("CAREOPS_API", ""), "Backend base URL (overrides config)")
	cmd.PersistentFlags().IntVar(&app.WorkspaceID, "workspace", 0, "Workspace id for workspace-scoped commands")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newVerifyCmd(app))
	cmd.AddCommand(newResendCodeCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newWorkspacesCmd(app))
	cmd.AddCommand(newContactsCmd(app))
	cmd.AddCommand(newBookingsCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newInboxCmd(app))
	cmd.AddCommand(newBookCmd(app))

	return cmd
}

func runTUI(app *App) error {
	return tui.Run(tui.Deps{
		Client:    app.client,
		Session:   app.sess,
		Workspace: &app.selects,
		Logger:    app.logger,
	})
}

func (app *App) requireToken() (string, error) {
	if !app.sess.Authenticated() {
		return "", errors.New("not logged in; run `careops login --email ... --password ...`")
	}
	return app.sess.Token(), nil
}

func (app *App) requireWorkspace() (int, error) {
	if app.WorkspaceID <= 0 {
		return 0, errors.New("missing --workspace <id>; run `careops workspaces list` to find one")
	}
	return app.WorkspaceID, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
