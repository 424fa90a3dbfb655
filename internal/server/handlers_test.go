package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expenses-ledger/internal/clients/cache"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/model/aggregate"
	"max.ks1230/expenses-ledger/internal/model/storage"
	"max.ks1230/expenses-ledger/internal/server/mock"
)

type fakeCache struct {
	entries     map[string]aggregate.Summary
	invalidated []expense.User
	readErr     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]aggregate.Summary)}
}

func (c *fakeCache) GetSummary(user expense.User, day string) (aggregate.Summary, error) {
	if c.readErr != nil {
		return aggregate.Summary{}, c.readErr
	}
	s, ok := c.entries[string(user)+day]
	if !ok {
		return aggregate.Summary{}, cache.ErrMiss
	}
	return s, nil
}

func (c *fakeCache) CacheSummary(user expense.User, day string, summary aggregate.Summary) error {
	c.entries[string(user)+day] = summary
	return nil
}

func (c *fakeCache) InvalidateUser(user expense.User) error {
	c.invalidated = append(c.invalidated, user)
	for k := range c.entries {
		if strings.HasPrefix(k, string(user)) {
			delete(c.entries, k)
		}
	}
	return nil
}

func newTestServer(t *testing.T, c SummaryCache) (*httptest.Server, *storage.InMemStorage) {
	t.Helper()
	store := storage.NewInMemStorage()
	h := NewHandlers(store, c)
	h.clock = func() time.Time { return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC) }
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv, store
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var payload map[string]any
	_ = json.NewDecoder(res.Body).Decode(&payload)
	return res, payload
}

func Test_OnCreate_ShouldReturnCreatedRecord(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	res, payload := doRequest(t, http.MethodPost, srv.URL+"/expenses",
		`{"user":"nobita","date":"2024-05-01T09:30:00Z","amount":100,"description":"lunch"}`)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.NotEmpty(t, payload["id"])
	assert.Equal(t, "nobita", payload["user"])
	assert.Equal(t, "2024-05-01", payload["date"])
	assert.Equal(t, 100.0, payload["amount"])
}

func Test_OnCreateWithBadInput_ShouldRespondBadRequest(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	for name, body := range map[string]string{
		"unknown user":   `{"user":"shizuka","date":"2024-05-01","amount":1}`,
		"missing amount": `{"user":"nobita","date":"2024-05-01"}`,
		"bad date":       `{"user":"nobita","date":"yesterday","amount":1}`,
		"negative":       `{"user":"nobita","date":"2024-05-01","amount":-3}`,
		"not json":       `{`,
	} {
		t.Run(name, func(t *testing.T) {
			res, payload := doRequest(t, http.MethodPost, srv.URL+"/expenses", body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func Test_OnList_ShouldFilterByUserNewestFirst(t *testing.T) {
	srv, store := newTestServer(t, nil)
	ctx := context.Background()
	_, err := store.CreateExpense(ctx, expense.Record{User: expense.Nobita, Date: "2024-05-01", Amount: "1"})
	require.NoError(t, err)
	_, err = store.CreateExpense(ctx, expense.Record{User: expense.Nobita, Date: "2024-05-03", Amount: "2"})
	require.NoError(t, err)
	_, err = store.CreateExpense(ctx, expense.Record{User: expense.Doremon, Date: "2024-05-02", Amount: "3"})
	require.NoError(t, err)

	res, err := http.Get(srv.URL + "/expenses?user=nobita")
	require.NoError(t, err)
	defer res.Body.Close()
	var records []expense.Record
	require.NoError(t, json.NewDecoder(res.Body).Decode(&records))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, records, 2)
	assert.Equal(t, expense.Date("2024-05-03"), records[0].Date)
	assert.Equal(t, expense.Date("2024-05-01"), records[1].Date)
}

func Test_OnListUnknownUser_ShouldRespondBadRequest(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	res, payload := doRequest(t, http.MethodGet, srv.URL+"/expenses?user=gian", "")

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, payload["error"], "valid user")
}

func Test_OnUpdateMissingRecord_ShouldRespondNotFound(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	res, payload := doRequest(t, http.MethodPut, srv.URL+"/expenses/nope", `{"amount":5}`)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Expense not found", payload["error"])
}

func Test_OnUpdateOtherUsersRecord_ShouldRespondNotFound(t *testing.T) {
	srv, store := newTestServer(t, nil)
	rec, err := store.CreateExpense(context.Background(), expense.Record{User: expense.Doremon, Date: "2024-05-01", Amount: "1"})
	require.NoError(t, err)

	res, _ := doRequest(t, http.MethodPut, srv.URL+"/expenses/"+rec.ID+"?user=nobita", `{"amount":5}`)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func Test_OnEmptyPatch_ShouldRespondBadRequest(t *testing.T) {
	srv, store := newTestServer(t, nil)
	rec, err := store.CreateExpense(context.Background(), expense.Record{User: expense.Nobita, Date: "2024-05-01", Amount: "1"})
	require.NoError(t, err)

	res, _ := doRequest(t, http.MethodPut, srv.URL+"/expenses/"+rec.ID, `{}`)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func Test_OnDelete_ShouldConfirmWithID(t *testing.T) {
	srv, store := newTestServer(t, nil)
	rec, err := store.CreateExpense(context.Background(), expense.Record{User: expense.Nobita, Date: "2024-05-01", Amount: "1"})
	require.NoError(t, err)

	res, payload := doRequest(t, http.MethodDelete, srv.URL+"/expenses/"+rec.ID, "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Expense deleted successfully", payload["message"])
	assert.Equal(t, rec.ID, payload["id"])

	res, _ = doRequest(t, http.MethodDelete, srv.URL+"/expenses/"+rec.ID, "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func serve(h *Handlers, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var payload map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	return rec, payload
}

func Test_OnStorageFailure_ShouldRespondInternalError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewStorageMock(m)

	store.ListExpensesMock.
		Inspect(func(ctx context.Context, user expense.User) {
			assert.Equal(t, expense.Nobita, user)
		}).
		Return(nil, errors.New("connection refused"))

	res, payload := serve(NewHandlers(store, nil), http.MethodGet, "/expenses?user=nobita", "")

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, payload["error"], "connection refused")
}

func Test_OnInvalidDraft_ShouldNotTouchStorage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewStorageMock(m)
	summaries := mock.NewSummaryCacheMock(m)

	res, _ := serve(NewHandlers(store, summaries), http.MethodPost, "/expenses", `{"user":"nobita","date":"2024-05-01"}`)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Zero(t, store.CreateExpenseBeforeCounter())
}

func Test_OnCreate_ShouldInvalidateOwnersSummaries(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewStorageMock(m)
	summaries := mock.NewSummaryCacheMock(m)

	store.CreateExpenseMock.Return(expense.Record{ID: "42", User: expense.Doremon, Date: "2024-05-01", Amount: "3.00"}, nil)
	summaries.InvalidateUserMock.Expect(expense.Doremon).Return(nil)

	res, payload := serve(NewHandlers(store, summaries), http.MethodPost, "/expenses", `{"user":"doremon","date":"2024-05-01","amount":3}`)

	assert.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, "42", payload["id"])
}

func Test_OnScopedDelete_ShouldPassOwnerAndInvalidateOnlyOwner(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewStorageMock(m)
	summaries := mock.NewSummaryCacheMock(m)

	store.DeleteExpenseMock.
		Inspect(func(ctx context.Context, id string, user expense.User) {
			assert.Equal(t, "42", id)
			assert.Equal(t, expense.Nobita, user)
		}).
		Return(nil)
	summaries.InvalidateUserMock.Expect(expense.Nobita).Return(nil)

	res, payload := serve(NewHandlers(store, summaries), http.MethodDelete, "/expenses/42?user=nobita", "")

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "42", payload["id"])
}

func Test_OnCachedSummary_ShouldNotListStorage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewStorageMock(m)
	summaries := mock.NewSummaryCacheMock(m)

	summaries.GetSummaryMock.
		Expect(expense.Nobita, "2024-05-10").
		Return(aggregate.Summary{Today: decimal.NewFromInt(12)}, nil)

	res, payload := serve(NewHandlers(store, summaries), http.MethodGet, "/expenses/summary?user=nobita&now=2024-05-10", "")

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "12", payload["today"])
	assert.Zero(t, store.ListExpensesBeforeCounter())
}

func Test_OnSummary_ShouldAggregateForReferenceDay(t *testing.T) {
	srv, store := newTestServer(t, nil)
	ctx := context.Background()
	for _, rec := range []expense.Record{
		{User: expense.Nobita, Date: "2024-05-10", Amount: "10.10"},
		{User: expense.Nobita, Date: "2024-05-04", Amount: "5"},
		{User: expense.Nobita, Date: "2024-05-01", Amount: "1"},
		{User: expense.Doremon, Date: "2024-05-10", Amount: "99"},
	} {
		_, err := store.CreateExpense(ctx, rec)
		require.NoError(t, err)
	}

	res, err := http.Get(srv.URL + "/expenses/summary?user=nobita")
	require.NoError(t, err)
	defer res.Body.Close()
	var summary aggregate.Summary
	require.NoError(t, json.NewDecoder(res.Body).Decode(&summary))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, decimal.RequireFromString("10.10").Equal(summary.Today))
	assert.True(t, decimal.RequireFromString("15.10").Equal(summary.LastSevenDays))
	assert.True(t, decimal.RequireFromString("16.10").Equal(summary.ThisMonth))
	assert.Len(t, summary.Distribution, 3)
}

func Test_OnSummaryWithBadReference_ShouldRespondBadRequest(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	res, _ := doRequest(t, http.MethodGet, srv.URL+"/expenses/summary?user=nobita&now=someday", "")

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func Test_OnMutation_ShouldInvalidateCachedSummary(t *testing.T) {
	c := newFakeCache()
	srv, _ := newTestServer(t, c)

	res, _ := doRequest(t, http.MethodGet, srv.URL+"/expenses/summary?user=nobita&now=2024-05-10", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, c.entries, "nobita2024-05-10")

	res, _ = doRequest(t, http.MethodPost, srv.URL+"/expenses", `{"user":"nobita","date":"2024-05-10","amount":7}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, []expense.User{expense.Nobita}, c.invalidated)
	assert.NotContains(t, c.entries, "nobita2024-05-10")

	_, payload := doRequest(t, http.MethodGet, srv.URL+"/expenses/summary?user=nobita&now=2024-05-10", "")
	assert.Equal(t, "7", payload["today"])
}

func Test_OnCacheFailure_ShouldServeFromStorage(t *testing.T) {
	c := newFakeCache()
	c.readErr = errors.New("memcache: no servers configured or available")
	srv, store := newTestServer(t, c)
	_, err := store.CreateExpense(context.Background(), expense.Record{User: expense.Nobita, Date: "2024-05-10", Amount: "3"})
	require.NoError(t, err)

	res, payload := doRequest(t, http.MethodGet, srv.URL+"/expenses/summary?user=nobita", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "3", payload["today"])
}
