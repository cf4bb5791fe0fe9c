// Package main is the entry point for the nanoid CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/nanoid-go/cmd"
)

func main() {
	// Cancel on SIGINT so large batches stop between random reads.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	code := cmd.RunCLI(ctx, cmd.BuildCommandTree(cmd.OSDeps()), os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
