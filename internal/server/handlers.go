package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expenses-ledger/internal/clients/cache"
	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/logger"
	"max.ks1230/expenses-ledger/internal/model/aggregate"
)

const maxBodyBytes = 1 << 20

// Storage is the persistence the handlers serve from.
type Storage interface {
	ListExpenses(ctx context.Context, user expense.User) ([]expense.Record, error)
	CreateExpense(ctx context.Context, rec expense.Record) (expense.Record, error)
	UpdateExpense(ctx context.Context, id string, user expense.User, patch expense.Patch) (expense.Record, error)
	DeleteExpense(ctx context.Context, id string, user expense.User) error
}

// SummaryCache holds computed summaries per user and reference day.
type SummaryCache interface {
	GetSummary(user expense.User, day string) (aggregate.Summary, error)
	CacheSummary(user expense.User, day string, summary aggregate.Summary) error
	InvalidateUser(user expense.User) error
}

type Handlers struct {
	storage Storage
	cache   SummaryCache
	clock   func() time.Time
}

// NewHandlers wires the CRUD surface. cache may be nil.
func NewHandlers(storage Storage, cache SummaryCache) *Handlers {
	return &Handlers{storage: storage, cache: cache, clock: time.Now}
}

func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /expenses", instrument("list", h.listExpenses))
	mux.Handle("POST /expenses", instrument("create", h.createExpense))
	mux.Handle("GET /expenses/summary", instrument("summary", h.summary))
	mux.Handle("PUT /expenses/{id}", instrument("update", h.updateExpense))
	mux.Handle("DELETE /expenses/{id}", instrument("delete", h.deleteExpense))
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type deleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (h *Handlers) listExpenses(w http.ResponseWriter, r *http.Request) {
	user, err := optionalUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	records, err := h.storage.ListExpenses(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handlers) createExpense(w http.ResponseWriter, r *http.Request) {
	var draft expense.Record
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, err)
		return
	}
	draft.ID = ""
	if err := draft.ValidateDraft(); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.storage.CreateExpense(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(created.User)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) updateExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user, err := optionalUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var patch expense.Patch
	if err = decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	if err = patch.Validate(); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.storage.UpdateExpense(r.Context(), id, user, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(updated.User)
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user, err := optionalUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.storage.DeleteExpense(r.Context(), id, user); err != nil {
		writeError(w, err)
		return
	}
	if user != "" {
		h.invalidate(user)
	} else {
		h.invalidate(expense.Users...)
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "Expense deleted successfully", ID: id})
}

func (h *Handlers) summary(w http.ResponseWriter, r *http.Request) {
	user, err := expense.ParseUser(r.URL.Query().Get("user"))
	if err != nil {
		writeError(w, err)
		return
	}
	ref, err := referenceTime(r.URL.Query().Get("now"), h.clock)
	if err != nil {
		writeError(w, err)
		return
	}
	day := expense.NewDate(ref).String()

	if h.cache != nil {
		cached, cacheErr := h.cache.GetSummary(user, day)
		if cacheErr == nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
		if !errors.Is(cacheErr, cache.ErrMiss) {
			logger.Error("summary cache read failed", zap.Error(cacheErr))
		}
	}

	records, err := h.storage.ListExpenses(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	summary := aggregate.Summarize(records, ref)

	if h.cache != nil {
		if cacheErr := h.cache.CacheSummary(user, day, summary); cacheErr != nil {
			logger.Error("summary cache write failed", zap.Error(cacheErr))
		}
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handlers) invalidate(users ...expense.User) {
	if h.cache == nil {
		return
	}
	for _, u := range users {
		if err := h.cache.InvalidateUser(u); err != nil {
			logger.Error("summary cache invalidation failed", zap.String("user", string(u)), zap.Error(err))
		}
	}
}

func optionalUser(r *http.Request) (expense.User, error) {
	raw := r.URL.Query().Get("user")
	if raw == "" {
		return "", nil
	}
	return expense.ParseUser(raw)
}

func referenceTime(raw string, clock func() time.Time) (time.Time, error) {
	if raw == "" {
		return clock(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	day, err := expense.Date(raw).Day()
	if err != nil {
		return time.Time{}, customerr.NewValidation("now: %s", err)
	}
	return day, nil
}

func decodeBody(r *http.Request, out any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(out); err != nil {
		return customerr.NewValidation("malformed body: %s", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	var (
		validation *customerr.ValidationError
		notFound   *customerr.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Reason})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Expense not found"})
	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
