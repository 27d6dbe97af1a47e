package main

import (
	"context"
	"os"

	"github.com/pathkit/segpath/internal/cmd"
	"github.com/pathkit/segpath/internal/cmdutil"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	ctx, cancel := watchSignals(context.Background())
	helper := cmdutil.NewHelper(version, os.Stdin, os.Stdout, os.Stderr)
	code := cmd.Execute(ctx, helper, os.Args[1:])
	cancel()
	os.Exit(code)
}
