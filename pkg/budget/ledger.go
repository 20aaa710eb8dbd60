package budget

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBudgetExhausted indicates a reservation would push the job past its
// token budget. Callers treat this as permanent for the job.
var ErrBudgetExhausted = errors.New("token budget exhausted")

// Reservation is an opaque handle for outstanding reserved tokens.
// Exactly one of Settle or Release consumes it; a deferred Release after
// Settle is a safe no-op, so the reserve/defer-release/settle pattern
// cannot leak reservations on error paths.
type Reservation struct {
	id     uint64
	amount int64
}

// Amount returns the reserved token count.
func (r Reservation) Amount() int64 {
	return r.amount
}

// Ledger tracks token spend for a single job. Engine access is serialized
// step by step, but the summarizer settles per-chunk usage from its map
// goroutines, so a mutex guards the counters anyway.
type Ledger struct {
	mu           sync.Mutex
	budget       int64
	used         int64
	reserved     int64
	reservations map[uint64]int64
	nextID       uint64
}

// NewLedger creates a ledger with the given token budget and prior spend
// (non-zero when resuming from a checkpoint).
func NewLedger(budget, used int64) *Ledger {
	return &Ledger{
		budget:       budget,
		used:         used,
		reservations: make(map[uint64]int64),
	}
}

// Reserve registers an estimated spend ahead of an LLM call. It fails with
// ErrBudgetExhausted when used + outstanding reservations + the estimate
// would exceed the budget.
func (l *Ledger) Reserve(estimate int64) (Reservation, error) {
	if estimate < 0 {
		estimate = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.used+l.reserved+estimate > l.budget {
		return Reservation{}, fmt.Errorf("%w: used %d + reserved %d + estimate %d exceeds budget %d",
			ErrBudgetExhausted, l.used, l.reserved, estimate, l.budget)
	}

	l.nextID++
	r := Reservation{id: l.nextID, amount: estimate}
	l.reservations[r.id] = estimate
	l.reserved += estimate
	return r, nil
}

// Settle cancels the reservation and charges the actual spend reported by
// the provider. Actual may exceed the estimate; the overage is still
// charged so tokens_used stays truthful.
func (l *Ledger) Settle(r Reservation, actual int64) {
	if actual < 0 {
		actual = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if amount, ok := l.reservations[r.id]; ok {
		delete(l.reservations, r.id)
		l.reserved -= amount
	}
	l.used += actual
}

// Release cancels the reservation without charging. No-op when the
// reservation was already settled or released.
func (l *Ledger) Release(r Reservation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount, ok := l.reservations[r.id]; ok {
		delete(l.reservations, r.id)
		l.reserved -= amount
	}
}

// Used returns tokens charged so far.
func (l *Ledger) Used() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used
}

// Remaining returns budget minus used, ignoring outstanding reservations.
func (l *Ledger) Remaining() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.budget - l.used
}

// Budget returns the job's token budget.
func (l *Ledger) Budget() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.budget
}

// HasHeadroom reports whether at least headroom tokens remain unspent.
// The engine's pre-flight gate calls this before every LLM-classified step.
func (l *Ledger) HasHeadroom(headroom int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.budget-l.used >= headroom
}
