package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/stpnv0/rahi/internal/cli"
	"github.com/stpnv0/rahi/pkg/rahiclient"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, rahiclient.ErrNetworkFailure) {
			fmt.Fprintln(os.Stderr, "server unreachable, check --server and try again")
		}
		os.Exit(1)
	}
}
