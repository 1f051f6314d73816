package views

import (
	"context"
	"sync"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/forms"
)

type PersonnelState struct {
	Members  []personnel.Member `json:"members"`
	Query    string             `json:"query"`
	Filtered []personnel.Member `json:"filtered"`
	Loading  bool               `json:"loading"`
	Err      string             `json:"error,omitempty"`
}

type Personnel struct {
	svc      *personnel.Service
	calls    inflight
	Register *forms.Modal[personnel.NewEmployee]

	mu    sync.Mutex
	state PersonnelState
}

func NewPersonnel(svc *personnel.Service) *Personnel {
	v := &Personnel{svc: svc}
	v.Register = forms.NewEmployeeModal(v.register)
	return v
}

func (v *Personnel) State() PersonnelState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Personnel) Load(ctx context.Context) error {
	if err := v.calls.begin("load"); err != nil {
		return err
	}
	defer v.calls.end("load")

	v.mu.Lock()
	v.state.Loading = true
	v.mu.Unlock()

	members, err := v.svc.Members(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Loading = false
	v.state.Err = errText(err)
	if err != nil {
		return err
	}
	v.state.Members = members
	v.state.Filtered = personnel.FilterMembers(members, v.state.Query)
	return nil
}

// Search filters the already-loaded members without a network call.
func (v *Personnel) Search(query string) []personnel.Member {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Query = query
	v.state.Filtered = personnel.FilterMembers(v.state.Members, query)
	return v.state.Filtered
}

func (v *Personnel) register(ctx context.Context, payload personnel.NewEmployee) error {
	if _, err := v.svc.Register(ctx, payload); err != nil {
		return err
	}
	// The list reload is best effort; its error lands in the view state.
	_ = v.Load(ctx)
	return nil
}
