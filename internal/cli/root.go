package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
	"max.ks1230/expenses-ledger/internal/model/ledger"
	"max.ks1230/expenses-ledger/internal/model/selection"
)

// Session is one synchronised view of the store for the selected user.
type Session struct {
	Controller *ledger.Controller
	Users      *selection.Context
}

// Deps supplies what the commands need; tests swap in a local store.
type Deps struct {
	NewController func() (*ledger.Controller, error)
	DefaultUser   expense.User
}

const userFlag = "user"

func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Browse and edit the shared expenses ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(userFlag, string(deps.DefaultUser), "user whose expenses to load (nobita or doremon)")

	root.AddCommand(
		newListCmd(deps),
		newSummaryCmd(deps),
		newDailyCmd(deps),
		newMonthlyCmd(deps),
		newAddCmd(deps),
		newUpdateCmd(deps),
		newDeleteCmd(deps),
	)
	return root
}

// start selects the --user and waits for the first synchronisation.
func start(ctx context.Context, cmd *cobra.Command, deps Deps) (*Session, error) {
	raw, err := cmd.Flags().GetString(userFlag)
	if err != nil {
		return nil, err
	}
	user, err := expense.ParseUser(raw)
	if err != nil {
		return nil, err
	}

	controller, err := deps.NewController()
	if err != nil {
		return nil, errors.Wrap(err, "connect to store")
	}
	s := &Session{Controller: controller, Users: selection.New(controller)}

	if err = s.Users.SwitchUser(ctx, user); err != nil {
		logger.Error("initial sync failed", zap.String("user", string(user)), zap.Error(err))
		return nil, errors.Wrap(err, "load expenses")
	}
	return s, nil
}
