package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"switch-openvpn/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	log := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd(cli.Options{
		Log:     log,
		In:      os.Stdin,
		Out:     os.Stdout,
		Version: version,
	})

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}
	return 0
}
