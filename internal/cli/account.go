package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var role, lang string

	cmd := &cobra.Command{
		Use:   "register <full-name> <phone>",
		Short: "Create an account and print its token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := opts.client().Register(cmd.Context(), args[0], args[1], role, lang)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), tok, func(w io.Writer) {
				fmt.Fprintf(w, "registered %s (%s) as %s\n", tok.User.FullName, tok.User.ID, tok.User.Role)
				fmt.Fprintf(w, "export RAHI_TOKEN=%s\n", tok.Token)
			})
		},
	}

	cmd.Flags().StringVar(&role, "role", "customer", "customer|worker|thekedar")
	cmd.Flags().StringVar(&lang, "lang", "en", "en|hi")

	return cmd
}

func NewLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <phone>",
		Short: "Get a token for an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := opts.client().Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), tok, func(w io.Writer) {
				fmt.Fprintf(w, "export RAHI_TOKEN=%s\n", tok.Token)
			})
		},
	}
}

func NewCategoriesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List service categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().Categories(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), list, func(w io.Writer) {
				for _, c := range list {
					fmt.Fprintf(w, "%-20s %-20s ₹%s\n", c.ID, c.NameEn, c.DefaultPrice.StringFixed(0))
				}
			})
		},
	}
}
