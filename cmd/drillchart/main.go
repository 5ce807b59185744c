// Command drillchart explores drillable charts and batches scatter plots.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/drillchart/internal/cli"
	"github.com/rshade/drillchart/pkg/version"
)

func main() {
	os.Exit(extractExitCode(run()))
}

// run executes the root command, cancelling on SIGINT or SIGTERM. Cobra
// prints the error itself.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.NewRootCmd(version.GetVersion()).ExecuteContext(ctx)
}

// extractExitCode maps err to the process exit status.
func extractExitCode(err error) int {
	return cli.ExitCode(err)
}
