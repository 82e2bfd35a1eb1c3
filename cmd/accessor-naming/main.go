// Package main provides the CLI entrypoint for accessor-naming.
//
// accessor-naming inspects protobuf-generated Java types:
//   - Classifies accessor methods and resolves property names
//   - Maps enum constants onto the absent-value convention
//   - Pairs wire properties with the fields of plain Go structs
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"accessor-naming/cmd/accessor-naming/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.NewRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}
