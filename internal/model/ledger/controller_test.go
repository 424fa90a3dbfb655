package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/model/ledger/mock"
)

type listResult struct {
	records []expense.Record
	err     error
}

// fakeStore answers from per-user data; gates let a test hold a List call open.
type fakeStore struct {
	mu      sync.Mutex
	data    map[expense.User][]expense.Record
	gates   map[expense.User]chan listResult
	listErr error
	mutErr  error
	updated map[string]expense.Record
	seq     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:    make(map[expense.User][]expense.Record),
		gates:   make(map[expense.User]chan listResult),
		updated: make(map[string]expense.Record),
	}
}

func (s *fakeStore) gate(u expense.User) chan listResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan listResult)
	s.gates[u] = ch
	return ch
}

func (s *fakeStore) List(ctx context.Context, user expense.User) ([]expense.Record, error) {
	s.mu.Lock()
	gate, gated := s.gates[user]
	delete(s.gates, user)
	records := append([]expense.Record(nil), s.data[user]...)
	err := s.listErr
	s.mu.Unlock()

	if gated {
		res := <-gate
		return res.records, res.err
	}
	return records, err
}

func (s *fakeStore) Create(ctx context.Context, draft expense.Record) (expense.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutErr != nil {
		return expense.Record{}, s.mutErr
	}
	s.seq++
	draft.ID = "id-" + string(rune('0'+s.seq))
	s.data[draft.User] = append(s.data[draft.User], draft)
	return draft, nil
}

func (s *fakeStore) Update(ctx context.Context, id string, user expense.User, patch expense.Patch) (expense.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutErr != nil {
		return expense.Record{}, s.mutErr
	}
	if rec, ok := s.updated[id]; ok {
		return rec, nil
	}
	for i, r := range s.data[user] {
		if r.ID == id {
			r = patch.Apply(r)
			s.data[user][i] = r
			return r, nil
		}
	}
	return expense.Record{}, customerr.NewNotFound(id)
}

func (s *fakeStore) Delete(ctx context.Context, id string, user expense.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutErr != nil {
		return "", s.mutErr
	}
	for i, r := range s.data[user] {
		if r.ID == id {
			s.data[user] = append(s.data[user][:i], s.data[user][i+1:]...)
			return id, nil
		}
	}
	return "", customerr.NewNotFound(id)
}

func record(id string, u expense.User, amount string) expense.Record {
	return expense.Record{ID: id, User: u, Date: "2024-05-01", Amount: expense.Amount(amount)}
}

func ids(records []expense.Record) []string {
	res := make([]string, 0, len(records))
	for _, r := range records {
		res = append(res, r.ID)
	}
	return res
}

func waitForStatus(t *testing.T, c *Controller, want Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().Status == want
	}, time.Second, time.Millisecond)
}

func Test_OnSelectUser_ShouldLoadRecords(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{record("1", expense.Nobita, "10")}
	c := NewController(store)

	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	s := c.Snapshot()
	assert.Equal(t, Ready, s.Status)
	assert.Equal(t, expense.Nobita, s.ActiveUser)
	assert.Equal(t, []string{"1"}, ids(s.Records))
}

func Test_OnSelectUser_ShouldRejectUnknownUser(t *testing.T) {
	c := NewController(newFakeStore())

	err := c.SelectUser(context.Background(), "suneo")

	assert.True(t, customerr.IsValidation(err))
	assert.Equal(t, Idle, c.Snapshot().Status)
}

func Test_OnSwitchUser_ShouldClearCacheAndDropStaleResponse(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{record("a1", expense.Nobita, "1")}
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	nobitaGate := store.gate(expense.Nobita)
	staleErr := make(chan error, 1)
	go func() { staleErr <- c.Refresh(context.Background()) }()
	waitForStatus(t, c, Loading)

	doremonGate := store.gate(expense.Doremon)
	selectErr := make(chan error, 1)
	go func() { selectErr <- c.SelectUser(context.Background(), expense.Doremon) }()
	require.Eventually(t, func() bool {
		return c.Snapshot().ActiveUser == expense.Doremon
	}, time.Second, time.Millisecond)

	s := c.Snapshot()
	assert.Empty(t, s.Records)
	assert.Equal(t, Loading, s.Status)

	nobitaGate <- listResult{records: []expense.Record{record("a1", expense.Nobita, "1"), record("a2", expense.Nobita, "2")}}
	assert.ErrorIs(t, <-staleErr, ErrSuperseded)
	assert.Empty(t, c.Snapshot().Records)

	doremonGate <- listResult{records: []expense.Record{record("b1", expense.Doremon, "3")}}
	require.NoError(t, <-selectErr)

	s = c.Snapshot()
	assert.Equal(t, Ready, s.Status)
	assert.Equal(t, []string{"b1"}, ids(s.Records))
}

func Test_OnRefresh_ShouldNotStartSecondFetchWhileLoading(t *testing.T) {
	store := newFakeStore()
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	gate := store.gate(expense.Nobita)
	done := make(chan error, 1)
	go func() { done <- c.Refresh(context.Background()) }()
	waitForStatus(t, c, Loading)

	assert.ErrorIs(t, c.Refresh(context.Background()), ErrAlreadyLoading)

	gate <- listResult{}
	assert.NoError(t, <-done)
}

func Test_OnRefreshFailure_ShouldKeepStaleRecords(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{record("1", expense.Nobita, "10")}
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	store.listErr = &customerr.StoreError{Op: "list", Err: errors.New("connection refused")}
	err := c.Refresh(context.Background())

	assert.True(t, customerr.IsStore(err))
	s := c.Snapshot()
	assert.Equal(t, Failed, s.Status)
	assert.True(t, customerr.IsStore(s.LastError))
	assert.Equal(t, []string{"1"}, ids(s.Records))
}

func Test_OnRefreshWithoutUser_ShouldFail(t *testing.T) {
	c := NewController(newFakeStore())

	assert.ErrorIs(t, c.Refresh(context.Background()), ErrNoActiveUser)
}

func Test_OnAdd_ShouldAppendStoredRecordOnlyAfterConfirmation(t *testing.T) {
	store := newFakeStore()
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	created, err := c.Add(context.Background(), expense.Record{Date: "2024-05-01", Amount: "100"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, expense.Nobita, created.User)
	s := c.Snapshot()
	assert.Equal(t, []string{created.ID}, ids(s.Records))
	assert.Equal(t, Mutation{Op: OpAdd, ID: created.ID, Status: MutationSucceeded}, s.Mutation)
}

func Test_OnAddFailure_ShouldLeaveCacheUnchanged(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{record("1", expense.Nobita, "10")}
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))
	store.mutErr = &customerr.StoreError{Op: "create", Err: errors.New("boom")}

	_, err := c.Add(context.Background(), expense.Record{Date: "2024-05-01", Amount: "1"})

	assert.True(t, customerr.IsStore(err))
	s := c.Snapshot()
	assert.Equal(t, []string{"1"}, ids(s.Records))
	assert.Equal(t, MutationFailed, s.Mutation.Status)
	assert.Equal(t, Ready, s.Status)
	assert.Error(t, s.LastError)
}

func Test_OnAddForAnotherUser_ShouldBeRejected(t *testing.T) {
	c := NewController(newFakeStore())
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	_, err := c.Add(context.Background(), expense.Record{User: expense.Doremon, Date: "2024-05-01", Amount: "1"})

	assert.True(t, customerr.IsValidation(err))
}

func Test_OnUpdate_ShouldKeepServerValue(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{record("1", expense.Nobita, "10"), record("2", expense.Nobita, "20")}
	store.updated["1"] = record("1", expense.Nobita, "50.00")
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))
	amount := expense.Amount("50")

	updated, err := c.Update(context.Background(), "1", expense.Patch{Amount: &amount})

	require.NoError(t, err)
	assert.Equal(t, expense.Amount("50.00"), updated.Amount)
	s := c.Snapshot()
	assert.Equal(t, []string{"1", "2"}, ids(s.Records))
	assert.Equal(t, expense.Amount("50.00"), s.Records[0].Amount)
}

func Test_OnUpdateFailure_ShouldLeaveRecordUnchanged(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{record("1", expense.Nobita, "10")}
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))
	amount := expense.Amount("99")

	_, err := c.Update(context.Background(), "nope", expense.Patch{Amount: &amount})
	assert.True(t, customerr.IsNotFound(err))

	store.mutErr = &customerr.StoreError{Op: "update", Err: errors.New("boom")}
	_, err = c.Update(context.Background(), "1", expense.Patch{Amount: &amount})
	assert.True(t, customerr.IsStore(err))

	assert.Equal(t, expense.Amount("10"), c.Snapshot().Records[0].Amount)
}

func Test_OnRemove_ShouldDropRecordOnSuccessOnly(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{
		record("1", expense.Nobita, "10"),
		record("2", expense.Nobita, "20"),
		record("3", expense.Nobita, "30"),
	}
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	require.NoError(t, c.Remove(context.Background(), "2"))
	assert.Equal(t, []string{"1", "3"}, ids(c.Snapshot().Records))

	store.mutErr = &customerr.StoreError{Op: "delete", Err: errors.New("boom")}
	assert.Error(t, c.Remove(context.Background(), "1"))
	assert.Equal(t, []string{"1", "3"}, ids(c.Snapshot().Records))
}

// blockingStore holds Update until released.
type blockingStore struct {
	*fakeStore
	entered chan struct{}
	release chan struct{}
}

func (s *blockingStore) Update(ctx context.Context, id string, user expense.User, patch expense.Patch) (expense.Record, error) {
	s.entered <- struct{}{}
	<-s.release
	return s.fakeStore.Update(ctx, id, user, patch)
}

func Test_OnConcurrentMutationOfSameRecord_ShouldRejectSecond(t *testing.T) {
	inner := newFakeStore()
	inner.data[expense.Nobita] = []expense.Record{record("1", expense.Nobita, "10")}
	store := &blockingStore{fakeStore: inner, entered: make(chan struct{}), release: make(chan struct{})}
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))
	amount := expense.Amount("11")

	done := make(chan error, 1)
	go func() {
		_, err := c.Update(context.Background(), "1", expense.Patch{Amount: &amount})
		done <- err
	}()
	<-store.entered

	assert.Equal(t, MutationPending, c.Snapshot().Mutation.Status)
	_, err := c.Update(context.Background(), "1", expense.Patch{Amount: &amount})
	assert.ErrorIs(t, err, ErrMutationInFlight)
	assert.ErrorIs(t, c.Remove(context.Background(), "1"), ErrMutationInFlight)

	close(store.release)
	require.NoError(t, <-done)
	assert.NoError(t, c.Remove(context.Background(), "1"))
}

func Test_OnViews_ShouldAggregateCachedRecords(t *testing.T) {
	store := newFakeStore()
	store.data[expense.Nobita] = []expense.Record{
		{ID: "1", User: expense.Nobita, Date: "2024-05-01", Amount: "100"},
		{ID: "2", User: expense.Nobita, Date: "2024-05-03", Amount: "20.5"},
		{ID: "3", User: expense.Nobita, Date: "2024-04-30", Amount: "NaN"},
	}
	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))

	summary := c.Summary(time.Date(2024, time.May, 3, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "20.50", summary.Today.StringFixed(2))
	assert.Equal(t, "120.50", summary.ThisMonth.StringFixed(2))
	assert.Len(t, summary.Warnings, 1)

	assert.Len(t, c.Daily().Buckets, 2)
	may, ok := c.Monthly().Month(2024, time.May)
	require.True(t, ok)
	assert.Equal(t, "120.50", may.Total.StringFixed(2))
}

func Test_OnRefreshDuringAdd_ShouldCacheCreatedRecordOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStoreMock(m)
	ctx := context.Background()

	committed := make(chan struct{})
	release := make(chan struct{})
	var lists int32
	store.ListMock.Set(func(ctx context.Context, user expense.User) ([]expense.Record, error) {
		if atomic.AddInt32(&lists, 1) == 1 {
			return nil, nil
		}
		return []expense.Record{record("id-1", expense.Nobita, "100")}, nil
	})
	store.CreateMock.Set(func(ctx context.Context, draft expense.Record) (expense.Record, error) {
		close(committed)
		<-release
		return record("id-1", expense.Nobita, "100.00"), nil
	})

	c := NewController(store)
	require.NoError(t, c.SelectUser(ctx, expense.Nobita))

	done := make(chan error, 1)
	go func() {
		_, err := c.Add(ctx, expense.Record{Date: "2024-05-01", Amount: "100"})
		done <- err
	}()
	<-committed
	require.NoError(t, c.Refresh(ctx))
	close(release)
	require.NoError(t, <-done)

	s := c.Snapshot()
	assert.Equal(t, []string{"id-1"}, ids(s.Records))
	assert.Equal(t, expense.Amount("100.00"), s.Records[0].Amount)
	assert.Equal(t, "100.00", c.Monthly().Years[0].Total.StringFixed(2))
}

func Test_OnUpdate_ShouldScopeStoreCallToActiveUser(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStoreMock(m)
	amount := expense.Amount("7")

	store.ListMock.Return([]expense.Record{record("1", expense.Doremon, "5")}, nil)
	store.UpdateMock.
		Inspect(func(ctx context.Context, id string, user expense.User, patch expense.Patch) {
			assert.Equal(t, "1", id)
			assert.Equal(t, expense.Doremon, user)
			assert.Equal(t, &amount, patch.Amount)
		}).
		Return(record("1", expense.Doremon, "7.00"), nil)

	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Doremon))
	_, err := c.Update(context.Background(), "1", expense.Patch{Amount: &amount})

	require.NoError(t, err)
	assert.Equal(t, expense.Amount("7.00"), c.Snapshot().Records[0].Amount)
}

func Test_OnRemoveNotFound_ShouldKeepRecordAndReportFailure(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStoreMock(m)

	store.ListMock.Return([]expense.Record{record("1", expense.Nobita, "5")}, nil)
	store.DeleteMock.
		Inspect(func(ctx context.Context, id string, user expense.User) {
			assert.Equal(t, expense.Nobita, user)
		}).
		Return("", customerr.NewNotFound("1"))

	c := NewController(store)
	require.NoError(t, c.SelectUser(context.Background(), expense.Nobita))
	err := c.Remove(context.Background(), "1")

	assert.True(t, customerr.IsNotFound(err))
	s := c.Snapshot()
	assert.Equal(t, []string{"1"}, ids(s.Records))
	assert.Equal(t, MutationFailed, s.Mutation.Status)
}
