// Command matrixcalc is an interactive dense-matrix calculator: addition,
// scalar and matrix multiplication, four transposes, determinant and inverse.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matrixcalc/internal/cli"
	"github.com/katalvlaran/matrixcalc/internal/config"
	"github.com/katalvlaran/matrixcalc/internal/logging"
)

func main() {
	fs := pflag.NewFlagSet("matrixcalc", pflag.ExitOnError)
	config.AddFlags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(viper.New(), fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "matrixcalc: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "matrixcalc: %v\n", err)
		os.Exit(2)
	}
	logger.V(logging.DEBUG).Info("Starting", "width", cfg.Width, "precision", cfg.Precision,
		"echoPrompts", cfg.EchoPrompts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal, restore default handling so a second one kills the process.
	context.AfterFunc(ctx, stop)

	session := cli.New(os.Stdin, os.Stdout,
		cli.WithLogger(logger),
		cli.WithEchoPrompts(cfg.EchoPrompts),
		cli.WithRenderOptions(cfg.RenderOptions()...),
	)
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.V(logging.DEBUG).Info("Interrupted")
			stop()
			os.Exit(130)
		}
		logger.Error(err, "Session ended abnormally")
		stop()
		os.Exit(1)
	}
}
