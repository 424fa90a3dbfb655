package expenses

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
)

const (
	expensesPath = "/expenses"
	userParam    = "user"

	opList   = "list"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

type config interface {
	BaseURL() string
	Timeout() time.Duration
}

// Client talks to the expenses CRUD API. It never retries; every call is
// bounded by the configured timeout and expiry surfaces as a StoreError.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

type errorResponse struct {
	Error string `json:"error"`
}

type deleteResponse struct {
	ID string `json:"id"`
}

func New(config config) *Client {
	return &Client{
		baseURL: strings.TrimRight(config.BaseURL(), "/"),
		timeout: config.Timeout(),
		client:  &http.Client{},
	}
}

func (c *Client) List(ctx context.Context, user expense.User) ([]expense.Record, error) {
	query := url.Values{}
	if user != "" {
		query.Set(userParam, string(user))
	}

	records := make([]expense.Record, 0)
	err := c.do(ctx, opList, http.MethodGet, expensesPath, query, nil, "", &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Create(ctx context.Context, draft expense.Record) (expense.Record, error) {
	if err := draft.ValidateDraft(); err != nil {
		return expense.Record{}, err
	}

	var created expense.Record
	err := c.do(ctx, opCreate, http.MethodPost, expensesPath, nil, draft, "", &created)
	return created, err
}

// Update sends a partial update scoped to the owning user.
func (c *Client) Update(ctx context.Context, id string, user expense.User, patch expense.Patch) (expense.Record, error) {
	if err := patch.Validate(); err != nil {
		return expense.Record{}, err
	}

	var updated expense.Record
	err := c.do(ctx, opUpdate, http.MethodPut, recordPath(id), scope(user), patch, id, &updated)
	return updated, err
}

func (c *Client) Delete(ctx context.Context, id string, user expense.User) (string, error) {
	var resp deleteResponse
	err := c.do(ctx, opDelete, http.MethodDelete, recordPath(id), scope(user), nil, id, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		resp.ID = id
	}
	return resp.ID, nil
}

func recordPath(id string) string {
	return expensesPath + "/" + url.PathEscape(id)
}

func scope(user expense.User) url.Values {
	if user == "" {
		return nil
	}
	return url.Values{userParam: []string{string(user)}}
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, id string, out any) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "expenses."+op)
	defer span.Finish()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	status := 0
	defer func() {
		observeRequest(op, status, time.Since(start))
		if err != nil {
			ext.Error.Set(span, true)
			logger.Error("store request failed", zap.String("op", op), zap.String("id", id), zap.Error(err))
		}
	}()

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return customerr.NewStore(op, err)
	}
	ext.HTTPMethod.Set(span, method)
	ext.HTTPUrl.Set(span, req.URL.String())

	res, err := c.client.Do(req)
	if err != nil {
		return customerr.NewStore(op, err)
	}
	defer res.Body.Close()
	status = res.StatusCode
	ext.HTTPStatusCode.Set(span, uint16(status))

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return customerr.NewStore(op, errors.Wrap(err, "read response"))
	}

	switch {
	case status == http.StatusNotFound && id != "":
		return customerr.NewNotFound(id)
	case status == http.StatusBadRequest:
		return customerr.NewValidation("%s", errorMessage(payload, status))
	case status < 200 || status >= 300:
		return customerr.NewStore(op, errors.New(errorMessage(payload, status)))
	}

	if err = json.Unmarshal(payload, out); err != nil {
		return customerr.NewStore(op, errors.Wrap(err, "unmarshalling response"))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "marshalling request")
		}
		reader = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func errorMessage(payload []byte, status int) string {
	var resp errorResponse
	if err := json.Unmarshal(payload, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return fmt.Sprintf("unexpected status %d", status)
}
