package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
	"github.com/TFMV/CredCoreMatch/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_ = utils.WriteError(os.Stderr, err)
		stop()
		if errors.Is(err, matcher.ErrPrecondition) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
