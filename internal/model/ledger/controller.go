// Package ledger keeps a client-side copy of one user's expenses in sync with
// the record store.
//
// Store calls are made without holding the controller lock, so reads
// (Snapshot and the aggregated views) never wait on the network. Every fetch
// is tagged with the user and generation it was issued for; a response that
// no longer matches the current selection is dropped. Mutations are applied
// only after the store confirms them, using the record the store returned.
package ledger

import (
	"context"
	"sync"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
)

type recordStore interface {
	List(ctx context.Context, user expense.User) ([]expense.Record, error)
	Create(ctx context.Context, draft expense.Record) (expense.Record, error)
	Update(ctx context.Context, id string, user expense.User, patch expense.Patch) (expense.Record, error)
	Delete(ctx context.Context, id string, user expense.User) (string, error)
}

type Controller struct {
	store recordStore

	mu         sync.Mutex
	state      State
	generation uint64
	mutations  uint64
	inFlight   map[string]struct{}
}

func NewController(store recordStore) *Controller {
	return &Controller{
		store:    store,
		state:    State{Status: Idle},
		inFlight: make(map[string]struct{}),
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Records = copyRecords(c.state.Records)
	return s
}

// Records returns a copy of the cached records.
func (c *Controller) Records() []expense.Record {
	return c.Snapshot().Records
}

// SelectUser makes u the active user, clears the cache and loads u's records.
// It is the only operation that clears the cache wholesale.
func (c *Controller) SelectUser(ctx context.Context, u expense.User) error {
	if !u.Valid() {
		return customerr.NewValidation("unknown user %q", u)
	}

	c.mu.Lock()
	c.state.ActiveUser = u
	c.state.Records = nil
	c.state.LastError = nil
	gen := c.beginFetchLocked()
	c.mu.Unlock()

	logger.Info("SelectUser", zap.String("user", string(u)))
	return c.fetch(ctx, u, gen)
}

// Refresh reloads the active user's records. A failed refresh keeps the
// previously cached records visible.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	u := c.state.ActiveUser
	if u == "" {
		c.mu.Unlock()
		return ErrNoActiveUser
	}
	if c.state.Status == Loading {
		c.mu.Unlock()
		return ErrAlreadyLoading
	}
	gen := c.beginFetchLocked()
	c.mu.Unlock()

	return c.fetch(ctx, u, gen)
}

func (c *Controller) beginFetchLocked() uint64 {
	c.generation++
	c.state.Status = Loading
	return c.generation
}

func (c *Controller) fetch(ctx context.Context, u expense.User, gen uint64) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ledger.fetch")
	defer span.Finish()
	span.SetTag("user", string(u))

	logger.Info("fetch - start", zap.String("user", string(u)), zap.Uint64("generation", gen))
	defer logger.Info("fetch - end", zap.String("user", string(u)))

	records, err := c.store.List(ctx, u)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen || c.state.ActiveUser != u {
		logger.Info("dropping stale fetch", zap.String("user", string(u)),
			zap.String("active", string(c.state.ActiveUser)))
		return ErrSuperseded
	}
	if err != nil {
		c.state.Status = Failed
		c.state.LastError = err
		return errors.Wrap(err, "fetch expenses")
	}

	c.state.Records = onlyUser(records, u)
	c.state.Status = Ready
	c.state.LastError = nil
	return nil
}

// onlyUser guards the cache against records of another user in a response.
func onlyUser(records []expense.Record, u expense.User) []expense.Record {
	res := make([]expense.Record, 0, len(records))
	for _, r := range records {
		if r.User == u {
			res = append(res, r)
		}
	}
	return res
}

// Add creates a record for the active user and appends the stored version on
// success. Nothing is inserted before the store assigns an id.
func (c *Controller) Add(ctx context.Context, draft expense.Record) (expense.Record, error) {
	c.mu.Lock()
	u := c.state.ActiveUser
	if u == "" {
		c.mu.Unlock()
		return expense.Record{}, ErrNoActiveUser
	}
	if draft.User == "" {
		draft.User = u
	}
	if draft.User != u {
		c.mu.Unlock()
		return expense.Record{}, customerr.NewValidation("record user %q is not the active user %q", draft.User, u)
	}
	seq := c.beginMutationLocked(OpAdd, "")
	c.mu.Unlock()

	created, err := c.store.Create(ctx, draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.failMutationLocked(seq, err)
		return expense.Record{}, errors.Wrap(err, "add expense")
	}
	if c.state.ActiveUser == created.User {
		// A refresh that ran while the create was in flight may already hold it.
		if i := indexOf(c.state.Records, created.ID); i >= 0 {
			records := copyRecords(c.state.Records)
			records[i] = created
			c.state.Records = records
		} else {
			c.state.Records = append(c.state.Records, created)
		}
	}
	c.succeedMutationLocked(seq, created.ID)
	return created, nil
}

// Update applies patch to the record with id and replaces the cached copy
// with the value the store returned.
func (c *Controller) Update(ctx context.Context, id string, patch expense.Patch) (expense.Record, error) {
	u, seq, err := c.beginRecordMutation(OpUpdate, id)
	if err != nil {
		return expense.Record{}, err
	}
	defer c.endRecordMutation(id)

	updated, err := c.store.Update(ctx, id, u, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.failMutationLocked(seq, err)
		return expense.Record{}, errors.Wrap(err, "update expense")
	}
	if c.state.ActiveUser == u {
		if i := indexOf(c.state.Records, id); i >= 0 {
			records := copyRecords(c.state.Records)
			records[i] = updated
			c.state.Records = records
		}
	}
	c.succeedMutationLocked(seq, id)
	return updated, nil
}

// Remove deletes the record with id and drops it from the cache on success.
func (c *Controller) Remove(ctx context.Context, id string) error {
	u, seq, err := c.beginRecordMutation(OpRemove, id)
	if err != nil {
		return err
	}
	defer c.endRecordMutation(id)

	_, err = c.store.Delete(ctx, id, u)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.failMutationLocked(seq, err)
		return errors.Wrap(err, "remove expense")
	}
	if c.state.ActiveUser == u {
		if i := indexOf(c.state.Records, id); i >= 0 {
			records := make([]expense.Record, 0, len(c.state.Records)-1)
			records = append(records, c.state.Records[:i]...)
			c.state.Records = append(records, c.state.Records[i+1:]...)
		}
	}
	c.succeedMutationLocked(seq, id)
	return nil
}

func (c *Controller) beginRecordMutation(op MutationOp, id string) (expense.User, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u := c.state.ActiveUser
	if u == "" {
		return "", 0, ErrNoActiveUser
	}
	if _, busy := c.inFlight[id]; busy {
		return "", 0, ErrMutationInFlight
	}
	c.inFlight[id] = struct{}{}
	return u, c.beginMutationLocked(op, id), nil
}

func (c *Controller) endRecordMutation(id string) {
	c.mu.Lock()
	delete(c.inFlight, id)
	c.mu.Unlock()
}

func (c *Controller) beginMutationLocked(op MutationOp, id string) uint64 {
	c.mutations++
	c.state.Mutation = Mutation{Op: op, ID: id, Status: MutationPending}
	logger.Info(string(op)+" - start", zap.String("id", id), zap.String("user", string(c.state.ActiveUser)))
	return c.mutations
}

func (c *Controller) succeedMutationLocked(seq uint64, id string) {
	logger.Info("mutation - end", zap.String("id", id), zap.Uint64("seq", seq))
	if seq != c.mutations {
		return
	}
	c.state.Mutation.ID = id
	c.state.Mutation.Status = MutationSucceeded
	c.state.Mutation.Err = nil
}

// failMutationLocked records err; the cached records stay untouched.
func (c *Controller) failMutationLocked(seq uint64, err error) {
	logger.Error("mutation failed", zap.Uint64("seq", seq), zap.Error(err))
	c.state.LastError = err
	if seq != c.mutations {
		return
	}
	c.state.Mutation.Status = MutationFailed
	c.state.Mutation.Err = err
}
