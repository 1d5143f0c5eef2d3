// SPDX-License-Identifier: MIT

// Command commgraph builds the communication graph of a mail corpus and
// reports its teams and connectors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/commgraph/config"
	"github.com/katalvlaran/commgraph/ingest"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// usageError marks bad arguments or flags.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line args. Usage problems, a bad root and an
// invalid configuration come back as *ExitError with code 2.
func run(ctx context.Context, args []string, in io.Reader, out, errW io.Writer) error {
	cmd := newRootCmd(in, out, errW)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var ue usageError
	if errors.As(err, &ue) ||
		errors.Is(err, ingest.ErrRootNotFound) ||
		errors.Is(err, ingest.ErrRootNotDir) ||
		errors.Is(err, config.ErrInvalid) {
		return &ExitError{Code: 2, Message: "commgraph: " + err.Error()}
	}

	return err
}
