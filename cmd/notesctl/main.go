package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/evgeniy-krivenko/exec-notes/internal/cli"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr so structured output stays parseable.
	if err := slogx.InitGlobal(os.Stderr, slogx.Setup{Level: "warn", Pretty: true}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cli.Execute(ctx, cli.NewRootCommand(nil)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
