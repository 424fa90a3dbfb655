package ledger

import (
	"github.com/pkg/errors"

	"max.ks1230/expenses-ledger/internal/entity/expense"
)

type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type MutationOp string

const (
	OpAdd    MutationOp = "add"
	OpUpdate MutationOp = "update"
	OpRemove MutationOp = "remove"
)

type MutationStatus int

const (
	MutationNone MutationStatus = iota
	MutationPending
	MutationSucceeded
	MutationFailed
)

func (s MutationStatus) String() string {
	switch s {
	case MutationNone:
		return "none"
	case MutationPending:
		return "pending"
	case MutationSucceeded:
		return "succeeded"
	case MutationFailed:
		return "failed"
	}
	return "unknown"
}

// Mutation describes the most recent add/update/remove.
type Mutation struct {
	Op     MutationOp
	ID     string
	Status MutationStatus
	Err    error
}

// State is a point-in-time copy of the controller; callers may keep it.
type State struct {
	ActiveUser expense.User
	Records    []expense.Record
	Status     Status
	LastError  error
	Mutation   Mutation
}

var (
	// ErrAlreadyLoading is returned by Refresh while a fetch is outstanding.
	ErrAlreadyLoading = errors.New("expenses are already loading")
	// ErrSuperseded is returned when a response arrived for a selection that
	// is no longer current and was dropped.
	ErrSuperseded = errors.New("response superseded by a newer selection")
	// ErrMutationInFlight is returned when a record already has a pending mutation.
	ErrMutationInFlight = errors.New("record has a mutation in flight")
	// ErrNoActiveUser is returned when an operation needs a selected user.
	ErrNoActiveUser = errors.New("no active user selected")
)

func copyRecords(records []expense.Record) []expense.Record {
	res := make([]expense.Record, len(records))
	copy(res, records)
	return res
}

func indexOf(records []expense.Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
