package cli

import (
	"time"

	"careops-cli/internal/api"

	"github.com/spf13/cobra"
)

func newBookingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Bookings within a workspace",
	}

	cmd.AddCommand(newBookingsListCmd(app))
	cmd.AddCommand(newBookingsCreateCmd(app))

	return cmd
}

func newBookingsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}
			bookings, err := app.client.ListBookings(cmd.Context(), token, workspaceID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": bookings})
		},
	}
}

func newBookingsCreateCmd(app *App) *cobra.Command {
	var bookingType, location, notes, scheduledAt string
	var contactID, duration int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a booking for a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.requireToken()
			if err != nil {
				return writeErr(cmd, err)
			}
			workspaceID, err := app.requireWorkspace()
			if err != nil {
				return writeErr(cmd, err)
			}

			when := time.Now().UTC()
			if scheduledAt != "" {
				when, err = time.Parse(time.RFC3339, scheduledAt)
				if err != nil {
					return writeErr(cmd, err)
				}
			}

			booking, err := app.client.CreateBooking(cmd.Context(), token, workspaceID, contactID, api.BookingCreateRequest{
				BookingType:     bookingType,
				ScheduledAt:     when,
				DurationMinutes: duration,
				Location:        location,
				Notes:           notes,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": booking})
		},
	}

	cmd.Flags().StringVar(&bookingType, "type", "", "Booking type (e.g. Consultation)")
	cmd.Flags().IntVar(&contactID, "contact", 0, "Contact id")
	cmd.Flags().IntVar(&duration, "duration", 60, "Duration in minutes")
	cmd.Flags().StringVar(&scheduledAt, "scheduled-at", "", "RFC3339 timestamp (default: now)")
	cmd.Flags().StringVar(&location, "location", "", "Location (optional)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes (optional)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("contact")
	return cmd
}
