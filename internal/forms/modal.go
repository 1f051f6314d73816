package forms

import (
	"context"
	"errors"
	"sync"
)

var ErrSubmitting = errors.New("submission already in progress")

type SubmitFunc[T any] func(ctx context.Context, payload T) error

// Modal holds one form's state. A submit validates locally, hands the cleaned
// payload to the caller and then either resets and closes or keeps the error
// and stays open.
type Modal[T any] struct {
	mu         sync.Mutex
	initial    T
	value      T
	open       bool
	submitting bool
	err        error
	prepare    func(T) (T, error)
	onSubmit   SubmitFunc[T]
}

func NewModal[T any](initial T, prepare func(T) (T, error), onSubmit SubmitFunc[T]) *Modal[T] {
	return &Modal[T]{initial: initial, value: initial, prepare: prepare, onSubmit: onSubmit}
}

func (m *Modal[T]) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
}

// Close discards the draft and any error.
func (m *Modal[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
	m.open = false
}

func (m *Modal[T]) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Modal[T]) Submitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitting
}

func (m *Modal[T]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Modal[T]) Value() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

func (m *Modal[T]) Set(value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
}

func (m *Modal[T]) Update(fn func(T) T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = fn(m.value)
}

func (m *Modal[T]) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.submitting {
		m.mu.Unlock()
		return ErrSubmitting
	}
	payload := m.value
	if m.prepare != nil {
		prepared, err := m.prepare(payload)
		if err != nil {
			m.err = err
			m.mu.Unlock()
			return err
		}
		payload = prepared
	}
	m.submitting = true
	m.err = nil
	m.mu.Unlock()

	err := m.onSubmit(ctx, payload)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if err != nil {
		m.err = err
		return err
	}
	m.resetLocked()
	m.open = false
	return nil
}

func (m *Modal[T]) resetLocked() {
	m.value = m.initial
	m.err = nil
}
