package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joshyorko/prompter/cli"
	"github.com/joshyorko/prompter/cmd"
	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/wizard"
)

const (
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		pretty.ShowCursor()
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

func exitCode(err error) int {
	var missing *cli.HandlerResolutionError
	var invalid *wizard.ValidationError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, wizard.ErrInterrupted), errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, wizard.ErrInvalidArgument), errors.As(err, &missing), errors.As(err, &invalid):
		return exitUsage
	}
	return exitFailure
}

func main() {
	defer ExitProtection()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx, os.Args[1:])
	code := exitCode(err)
	pretty.Guard(code == 0, code, "Error: %v", err)
}
