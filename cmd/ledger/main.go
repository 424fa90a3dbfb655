package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/cli"
	"max.ks1230/expenses-ledger/internal/clients/expenses"
	"max.ks1230/expenses-ledger/internal/config"
	"max.ks1230/expenses-ledger/internal/logger"
	"max.ks1230/expenses-ledger/internal/model/ledger"
	"max.ks1230/expenses-ledger/internal/tracing"
)

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred cleanup happens before os.Exit.
func run() int {
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Error("failed to init config", zap.Error(err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = execute(ctx, conf, os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, conf *config.Service, args []string, out io.Writer) error {
	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		return err
	}
	defer closer.Close()

	deps := cli.Deps{
		NewController: func() (*ledger.Controller, error) {
			return ledger.NewController(expenses.New(conf.Client())), nil
		},
	}
	if u, userErr := conf.App().DefaultUser(); userErr == nil {
		deps.DefaultUser = u
	}

	root := cli.NewRootCmd(deps)
	root.SetArgs(args)
	root.SetOut(out)
	return root.ExecuteContext(ctx)
}
