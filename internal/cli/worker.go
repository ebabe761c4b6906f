package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stpnv0/rahi/pkg/rahiclient"
)

func NewWorkerCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage your worker profile",
	}

	var bio string
	create := &cobra.Command{
		Use:   "create-profile",
		Short: "Create the worker profile for the current account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.client().CreateWorkerProfile(cmd.Context(), bio)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), p, func(w io.Writer) { printWorker(w, p) })
		},
	}
	create.Flags().StringVar(&bio, "bio", "", "short description")

	status := &cobra.Command{
		Use:       "status <user-id> <online|offline>",
		Short:     "Go online or offline",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"online", "offline"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.client().SetWorkerStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), p, func(w io.Writer) { printWorker(w, p) })
		},
	}

	cmd.AddCommand(create, status)
	return cmd
}

func printWorker(w io.Writer, p *rahiclient.Worker) {
	fmt.Fprintf(w, "%s  %s  jobs=%d balance=₹%s\n", p.UserID, p.Status, p.TotalJobs, p.WalletBalance.StringFixed(2))
}

func NewWalletCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Check earnings and withdraw",
	}

	balance := &cobra.Command{
		Use:   "balance",
		Short: "Show the ledger balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.client().Balance(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), b, func(w io.Writer) {
				fmt.Fprintf(w, "₹%s\n", b.Balance.StringFixed(2))
			})
		},
	}

	var limit int
	txs := &cobra.Command{
		Use:   "transactions",
		Short: "List ledger entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().Transactions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), list, func(w io.Writer) {
				for _, t := range list {
					fmt.Fprintf(w, "%s  %-10s %10s  %s\n", t.CreatedAt, t.Type, t.Amount.StringFixed(2), t.Status)
				}
			})
		},
	}
	txs.Flags().IntVar(&limit, "limit", 0, "max results")

	withdraw := &cobra.Command{
		Use:   "withdraw <amount> <upi-id>",
		Short: "Withdraw to a UPI id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			t, err := opts.client().Withdraw(cmd.Context(), amount, args[1])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), t, func(w io.Writer) {
				fmt.Fprintf(w, "withdrawal %s: ₹%s %s\n", t.ID, t.Amount.Neg().StringFixed(2), t.Status)
			})
		},
	}

	cmd.AddCommand(balance, txs, withdraw)
	return cmd
}

func NewNotificationsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"n"},
		Short:   "Show your notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().Notifications(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), list, func(w io.Writer) {
				fmt.Fprintf(w, "%d unread\n", list.Unread)
				for _, n := range list.Items {
					mark := " "
					if !n.Read {
						mark = "*"
					}
					fmt.Fprintf(w, "%s %s  %s: %s\n", mark, n.CreatedAt, n.Title, n.Message)
				}
			})
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := opts.client().MarkAllRead(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d marked read\n", n)
			return nil
		},
	}

	cmd.AddCommand(readAll)
	return cmd
}
