package cli

import (
	"fmt"
	"time"

	"careops-cli/internal/api"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Public booking flow. With a session token the contact and booking are
// created through the backend; without one the confirmation is local only.
func newBookCmd(app *App) *cobra.Command {
	var name, email, phone, bookingType, date, timeOfDay string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment in a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}

			when, err := time.Parse("2006-01-02 15:04", date+" "+timeOfDay)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid date/time: %w", err))
			}

			confirmation := map[string]any{
				"name":         name,
				"email":        email,
				"booking_type": bookingType,
				"scheduled_at": when.Format(time.RFC3339),
			}

			if app.sess.Authenticated() {
				token := app.sess.Token()
				contact, err := app.client.CreateContact(cmd.Context(), token, workspaceID, api.ContactCreateRequest{
					Name:  name,
					Email: email,
					Phone: phone,
				})
				if err != nil {
					return writeErr(cmd, err)
				}
				booking, err := app.client.CreateBooking(cmd.Context(), token, workspaceID, contact.ID, api.BookingCreateRequest{
					BookingType:     bookingType,
					ScheduledAt:     when,
					DurationMinutes: 60,
				})
				if err != nil {
					return writeErr(cmd, err)
				}
				confirmation["booking_id"] = booking.ID
				confirmation["status"] = booking.Status
			} else {
				app.logger.Info("local-only booking confirmation (no session token)",
					zap.Int("workspace", workspaceID))
				confirmation["local_only"] = true
			}

			return writeOut(cmd, app, map[string]any{"data": confirmation})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your full name")
	cmd.Flags().StringVar(&email, "email", "", "Your email")
	cmd.Flags().StringVar(&phone, "phone", "", "Your phone (optional)")
	cmd.Flags().StringVar(&bookingType, "type", "", "Booking type")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "09:00", "Time (HH:MM)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
