package selection

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
)

type userSelector interface {
	SelectUser(ctx context.Context, u expense.User) error
}

// Context owns the active user. It is the single place the selection lives;
// everything else receives the user as an argument.
type Context struct {
	controller userSelector

	mu     sync.RWMutex
	active expense.User
}

func New(controller userSelector) *Context {
	return &Context{controller: controller}
}

func (c *Context) Active() expense.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// SwitchUser records u as active and asks the controller to resynchronise.
// The selection changes even when the fetch fails, so a retry refreshes u.
func (c *Context) SwitchUser(ctx context.Context, u expense.User) error {
	if !u.Valid() {
		return customerr.NewValidation("unknown user %q", u)
	}

	c.mu.Lock()
	prev := c.active
	c.active = u
	c.mu.Unlock()

	logger.Info("switch user", zap.String("from", string(prev)), zap.String("to", string(u)))
	return c.controller.SelectUser(ctx, u)
}
