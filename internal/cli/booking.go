package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stpnv0/rahi/pkg/rahiclient"
)

func NewBookingCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "booking",
		Aliases: []string{"b"},
		Short:   "Create bookings and move them through their lifecycle",
	}

	cmd.AddCommand(newBookingCreateCommand(opts))
	cmd.AddCommand(newBookingListCommand(opts))
	cmd.AddCommand(newBookingGetCommand(opts))
	cmd.AddCommand(newBookingHistoryCommand(opts))
	cmd.AddCommand(newBookingActionCommand(opts, "accept", "Take a pending or offered job", (*rahiclient.Client).Accept))
	cmd.AddCommand(newBookingActionCommand(opts, "complete", "Finish a started job", (*rahiclient.Client).Complete))
	cmd.AddCommand(newBookingActionCommand(opts, "cancel", "Cancel a booking", (*rahiclient.Client).Cancel))
	cmd.AddCommand(newBookingRejectCommand(opts))
	cmd.AddCommand(newBookingStartCommand(opts))

	return cmd
}

func printBooking(w io.Writer, b *rahiclient.Booking) {
	worker := "-"
	if b.WorkerID != nil {
		worker = *b.WorkerID
	}
	fmt.Fprintf(w, "%s  %-11s %-18s worker=%s price=₹%s\n", b.ID, b.Status, b.CategoryID, worker, b.BasePrice.StringFixed(2))
	if b.OTP != "" {
		fmt.Fprintf(w, "  start OTP: %s\n", b.OTP)
	}
}

func newBookingCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		nb    rahiclient.NewBooking
		price string
	)

	cmd := &cobra.Command{
		Use:   "create <category> <address>",
		Short: "Place a booking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb.CategoryID, nb.Address = args[0], args[1]
			if price != "" {
				p, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("invalid --price: %w", err)
				}
				nb.BasePrice = &p
			}

			b, err := opts.client().CreateBooking(cmd.Context(), nb)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), b, func(w io.Writer) { printBooking(w, b) })
		},
	}

	cmd.Flags().StringVar(&nb.Description, "description", "", "what needs doing")
	cmd.Flags().StringVar(&nb.City, "city", "", "city")
	cmd.Flags().StringVar(&price, "price", "", "base price, defaults to the category price")
	cmd.Flags().BoolVar(&nb.IsEmergency, "emergency", false, "mark as emergency")

	return cmd
}

func newBookingListCommand(opts *RootOptions) *cobra.Command {
	var (
		status     string
		unassigned bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings you take part in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := map[string]string{"status": status}
			if unassigned {
				filters["unassigned"] = "1"
			}
			if limit > 0 {
				filters["limit"] = strconv.Itoa(limit)
			}

			list, err := opts.client().ListBookings(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), list, func(w io.Writer) {
				for i := range list {
					printBooking(w, &list[i])
				}
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "comma separated statuses")
	cmd.Flags().BoolVar(&unassigned, "open", false, "only jobs without a worker")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")

	return cmd
}

func newBookingGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.client().GetBooking(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), b, func(w io.Writer) { printBooking(w, b) })
		},
	}
}

func newBookingHistoryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show the status transitions of a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := opts.client().History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), entries, func(w io.Writer) {
				for _, e := range entries {
					from := e.From
					if from == "" {
						from = "-"
					}
					fmt.Fprintf(w, "%s  %-11s -> %-11s by %s\n", e.CreatedAt, from, e.To, e.ActorID)
				}
			})
		},
	}
}

type bookingAction func(c *rahiclient.Client, ctx context.Context, id string) (*rahiclient.Booking, error)

func newBookingActionCommand(opts *RootOptions, name, short string, action bookingAction) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := action(opts.client(), cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), b, func(w io.Writer) { printBooking(w, b) })
		},
	}
}

func newBookingRejectCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id>",
		Short: "Decline an offered job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().Reject(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "rejected")
			return nil
		},
	}
}

func newBookingStartCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start <id> <otp>",
		Short: "Start a job with the customer's OTP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.client().Start(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), b, func(w io.Writer) { printBooking(w, b) })
		},
	}
}
