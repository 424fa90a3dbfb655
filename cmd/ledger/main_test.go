package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expenses-ledger/internal/config"
	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/model/storage"
	"max.ks1230/expenses-ledger/internal/server"
)

func newTestConfig(t *testing.T, baseURL string) *config.Service {
	t.Helper()
	conf, err := config.Parse([]byte("client:\n  base-url: " + baseURL + "\n"))
	require.NoError(t, err)
	return conf
}

func Test_OnCommandFailure_ShouldReturnErrorInsteadOfExiting(t *testing.T) {
	conf := newTestConfig(t, "http://127.0.0.1:1")
	var out bytes.Buffer

	err := execute(context.Background(), conf, []string{"--user", "gian", "list"}, &out)

	assert.True(t, customerr.IsValidation(err))
	assert.Empty(t, out.String())
}

func Test_OnAddThenList_ShouldPrintStoredExpense(t *testing.T) {
	srv := httptest.NewServer(server.NewHandlers(storage.NewInMemStorage(), nil).Routes())
	defer srv.Close()
	conf := newTestConfig(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), conf,
		[]string{"--user", "nobita", "add", "--amount", "12.50", "--date", "2024-05-01", "--description", "tea"}, &out))
	assert.Contains(t, out.String(), "12.50 on 2024-05-01")

	out.Reset()
	require.NoError(t, execute(context.Background(), conf, []string{"--user", "nobita", "list"}, &out))
	assert.Contains(t, out.String(), "tea")
}
