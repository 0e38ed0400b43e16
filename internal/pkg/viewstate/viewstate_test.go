package viewstate

import (
	"errors"
	"testing"
)

const (
	viewBrowse View = "browse"
	viewCreate View = "create"
	viewDetail View = "detail"
)

func newTestMachine() *Machine {
	return New(viewBrowse, map[View][]View{
		viewBrowse: {viewCreate, viewDetail},
		viewCreate: {viewBrowse},
		viewDetail: {viewBrowse},
	})
}

func TestMachineAllowsTableTransitions(t *testing.T) {
	m := newTestMachine()

	if err := m.To(viewCreate); err != nil {
		t.Fatalf("To(create) returned error: %v", err)
	}
	if got := m.Current(); got != viewCreate {
		t.Fatalf("Current() = %q, want %q", got, viewCreate)
	}

	if err := m.To(viewBrowse); err != nil {
		t.Fatalf("To(browse) returned error: %v", err)
	}
}

func TestMachineRejectsUnknownTransition(t *testing.T) {
	m := newTestMachine()

	if err := m.To(viewCreate); err != nil {
		t.Fatalf("setup transition failed: %v", err)
	}

	err := m.To(viewDetail)
	if err == nil {
		t.Fatal("To(detail) from create succeeded, want error")
	}

	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *ErrInvalidTransition", err)
	}

	// Failed transition must leave the state unchanged.
	if got := m.Current(); got != viewCreate {
		t.Fatalf("Current() after rejected transition = %q, want %q", got, viewCreate)
	}
}

func TestMachineReset(t *testing.T) {
	m := newTestMachine()

	if err := m.To(viewDetail); err != nil {
		t.Fatalf("setup transition failed: %v", err)
	}

	m.Reset(viewBrowse)

	if got := m.Current(); got != viewBrowse {
		t.Fatalf("Current() after Reset = %q, want %q", got, viewBrowse)
	}
}
