//go:build unit || e2e

package fakeupstream

import (
	"context"
	"sync"

	"car-rental/internal/usecase/shared"
)

// Idempotency is an in-memory shared.IdempotencyStore.
type Idempotency struct {
	mu       sync.Mutex
	records  map[string]*shared.IdempotencyRecord
	ClaimErr error
	// CompleteErrs fail the next Complete calls in order.
	CompleteErrs  []error
	completeCalls int
}

func NewIdempotency() *Idempotency {
	return &Idempotency{records: make(map[string]*shared.IdempotencyRecord)}
}

func (i *Idempotency) Claim(ctx context.Context, key, username, requestHash string) (*shared.IdempotencyRecord, bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.ClaimErr != nil {
		return nil, false, i.ClaimErr
	}
	k := username + ":" + key
	if rec, ok := i.records[k]; ok {
		cp := *rec
		return &cp, false, nil
	}
	i.records[k] = &shared.IdempotencyRecord{Status: shared.IdempotencyStatusProcessing, RequestHash: requestHash}
	return nil, true, nil
}

func (i *Idempotency) Complete(ctx context.Context, key, username, requestHash string, result []byte) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.completeCalls++
	if len(i.CompleteErrs) > 0 {
		err := i.CompleteErrs[0]
		i.CompleteErrs = i.CompleteErrs[1:]
		return err
	}
	i.records[username+":"+key] = &shared.IdempotencyRecord{
		Status:      shared.IdempotencyStatusCompleted,
		RequestHash: requestHash,
		Result:      result,
	}
	return nil
}

func (i *Idempotency) Release(ctx context.Context, key, username string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.records, username+":"+key)
	return nil
}

func (i *Idempotency) Record(key, username string) (*shared.IdempotencyRecord, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.records[username+":"+key]
	return rec, ok
}

// Events records published events.
type Events struct {
	mu     sync.Mutex
	events []shared.RentalEvent
	Err    error
}

func (e *Events) Publish(ctx context.Context, event shared.RentalEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.Err != nil {
		return e.Err
	}
	e.events = append(e.events, event)
	return nil
}

func (e *Events) Types() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	types := make([]string, len(e.events))
	for i, ev := range e.events {
		types[i] = ev.Type
	}
	return types
}

func (e *Events) All() []shared.RentalEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]shared.RentalEvent(nil), e.events...)
}

func (i *Idempotency) CompleteCalls() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.completeCalls
}
