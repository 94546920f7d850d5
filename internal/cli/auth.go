package cli

import (
	"errors"
	"strings"

	"careops-cli/internal/api"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := app.client.Login(cmd.Context(), email, password)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Profile fetch is best-effort; the token alone is a valid session.
			user, err := app.client.Me(cmd.Context(), tok.AccessToken)
			if err != nil {
				app.logger.Warn("profile fetch after login failed", zap.Error(err))
				user = nil
			}
			if err := app.sess.SetAuth(tok.AccessToken, user); err != nil {
				return writeErr(cmd, err)
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"email":         email,
					"authenticated": true,
				},
				"_hints": []string{
					"careops workspaces list",
				},
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sess.Logout(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"authenticated": false},
			})
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var email, password, fullName, phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (phone number is optional; providing one starts SMS verification)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.client.Register(cmd.Context(), api.RegisterRequest{
				Email:       email,
				Password:    password,
				FullName:    fullName,
				PhoneNumber: phone,
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			hints := []string{"careops login --email " + email + " --password ..."}
			if strings.TrimSpace(phone) != "" {
				// Remember which account is mid-verification so verify/resend
				// work without retyping the email.
				if err := app.sess.SetPendingVerificationEmail(email); err != nil {
					return writeErr(cmd, err)
				}
				hints = []string{
					"careops verify --code <6-digit code>",
					"careops resend-code",
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data":   user,
				"_hints": hints,
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password (minimum 6 characters)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number with country code (optional)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("full-name")
	return cmd
}

func newVerifyCmd(app *App) *cobra.Command {
	var email, code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the SMS code sent at registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = app.sess.PendingVerificationEmail()
			}
			if email == "" {
				return writeErr(cmd, errors.New("no pending verification; pass --email"))
			}
			if err := app.client.VerifySMS(cmd.Context(), email, code); err != nil {
				return writeErr(cmd, err)
			}
			if err := app.sess.SetPendingVerificationEmail(""); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"email": email, "verified": true},
				"_hints": []string{
					"careops login --email " + email + " --password ...",
				},
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (default: the pending registration)")
	cmd.Flags().StringVar(&code, "code", "", "6-digit verification code")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newResendCodeCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "resend-code",
		Short: "Resend the SMS verification code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = app.sess.PendingVerificationEmail()
			}
			if email == "" {
				return writeErr(cmd, errors.New("no pending verification; pass --email"))
			}
			if err := app.client.ResendSMS(cmd.Context(), email); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"email": email, "resent": true},
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (default: the pending registration)")
	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := app.client.Me(cmd.Context(), token)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": user})
		},
	}
}
