package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/stpnv0/rahi/pkg/rahiclient"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server string
	Token  string
	Format string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

func (o *RootOptions) client() *rahiclient.Client {
	return rahiclient.New(o.Server, rahiclient.WithToken(o.Token))
}

// print writes v as indented JSON, or runs text when the format is text.
func (o *RootOptions) print(w io.Writer, v any, text func(io.Writer)) error {
	if o.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

// NewRootCommand creates the rahictl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rahictl",
		Short: "rahictl - RAHI marketplace command line",
		Long:  "Book local workers, run jobs through accept, OTP start and completion, and check wallets.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", envOr("RAHI_SERVER", "http://localhost:8080"), "API base URL")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", os.Getenv("RAHI_TOKEN"), "bearer token (env RAHI_TOKEN)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewCategoriesCommand(opts))
	cmd.AddCommand(NewBookingCommand(opts))
	cmd.AddCommand(NewWorkerCommand(opts))
	cmd.AddCommand(NewWalletCommand(opts))
	cmd.AddCommand(NewNotificationsCommand(opts))

	return cmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
