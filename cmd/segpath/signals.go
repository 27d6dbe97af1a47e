package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// watchSignals cancels the returned context on the first interrupt so a
// running batch can stop between lines
func watchSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
