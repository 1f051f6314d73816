package views

import (
	"errors"
	"sync"

	"matchmind/internal/domain/personnel"
)

var (
	ErrBusy       = errors.New("request already in progress")
	ErrEmptyQuery = personnel.ErrEmptyQuery
)

// inflight allows one running request per action name.
type inflight struct {
	mu      sync.Mutex
	running map[string]bool
}

func (f *inflight) begin(action string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running == nil {
		f.running = map[string]bool{}
	}
	if f.running[action] {
		return ErrBusy
	}
	f.running[action] = true
	return nil
}

func (f *inflight) end(action string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.running, action)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
