package expenses

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
)

type testConfig struct {
	url     string
	timeout time.Duration
}

func (c testConfig) BaseURL() string        { return c.url }
func (c testConfig) Timeout() time.Duration { return c.timeout }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return New(testConfig{url: server.URL + "/", timeout: time.Second}), &calls
}

func Test_OnList_ShouldPassUserAndDecodeRecords(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/expenses", r.URL.Path)
		assert.Equal(t, "nobita", r.URL.Query().Get("user"))
		_, _ = io.WriteString(w, `[{"id":"1","user":"nobita","date":"2024-05-01","amount":100.00}]`)
	})

	records, err := client.List(context.Background(), expense.Nobita)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, expense.Amount("100.00"), records[0].Amount)
}

func Test_OnCreate_ShouldValidateWithoutContactingStore(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := client.Create(context.Background(), expense.Record{User: "shizuka", Date: "2024-05-01", Amount: "1"})
	assert.True(t, customerr.IsValidation(err))

	_, err = client.Create(context.Background(), expense.Record{User: expense.Nobita, Date: "2024-05-01"})
	assert.True(t, customerr.IsValidation(err))

	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func Test_OnCreate_ShouldReturnStoredRecord(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var draft expense.Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, expense.Doremon, draft.User)

		draft.ID = "abc"
		draft.Amount = "12.50"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(draft)
	})

	created, err := client.Create(context.Background(), expense.Record{User: expense.Doremon, Date: "2024-05-01", Amount: "12.5"})

	require.NoError(t, err)
	assert.Equal(t, "abc", created.ID)
	assert.Equal(t, expense.Amount("12.50"), created.Amount)
}

func Test_OnUpdate_ShouldScopeByUserAndMapNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/expenses/missing", r.URL.Path)
		assert.Equal(t, "nobita", r.URL.Query().Get("user"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Expense not found"}`)
	})
	amount := expense.Amount("5")

	_, err := client.Update(context.Background(), "missing", expense.Nobita, expense.Patch{Amount: &amount})

	assert.True(t, customerr.IsNotFound(err))
}

func Test_OnDelete_ShouldReturnDeletedID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		_, _ = io.WriteString(w, `{"message":"Expense deleted successfully","id":"42"}`)
	})

	id, err := client.Delete(context.Background(), "42", expense.Nobita)

	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func Test_OnServerFailure_ShouldReturnStoreErrorWithMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"db is down"}`)
	})

	_, err := client.List(context.Background(), expense.Nobita)

	require.True(t, customerr.IsStore(err))
	assert.Contains(t, err.Error(), "db is down")
}

func Test_OnSlowStore_ShouldTimeOutAsStoreError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)
	client := New(testConfig{url: server.URL, timeout: 50 * time.Millisecond})

	_, err := client.List(context.Background(), expense.Nobita)

	assert.True(t, customerr.IsStore(err))
}

func Test_OnGarbageResponse_ShouldReturnStoreError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := client.List(context.Background(), expense.Nobita)

	assert.True(t, customerr.IsStore(err))
}
