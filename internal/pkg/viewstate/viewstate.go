/*
Package viewstate implements a small finite-state machine for per-screen view modes.

Each stateful screen (consultation, post composer) owns a closed set of named
views and an explicit transition table. Exactly one view is active at a time; an
attempted transition outside the table is rejected and leaves the state
unchanged.
*/
package viewstate

import "fmt"

// View names a single view mode within a screen.
type View string

// ErrInvalidTransition reports a transition the machine's table does not allow.
type ErrInvalidTransition struct {
	From View
	To   View
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("viewstate: no transition from %q to %q", e.From, e.To)
}

// Machine tracks the active view of one screen instance against a fixed transition table.
// Machine is not safe for concurrent use; the owning store serializes access.
type Machine struct {
	current     View
	transitions map[View][]View
}

// New constructs a Machine starting at initial with the given transition table.
// The table maps each view to the set of views it may move to.
func New(initial View, transitions map[View][]View) *Machine {
	return &Machine{
		current:     initial,
		transitions: transitions,
	}
}

// Current returns the active view.
func (m *Machine) Current() View {
	return m.current
}

// To moves the machine to the target view if the transition table allows it.
// On an invalid transition the state is left unchanged and an error is returned.
func (m *Machine) To(target View) error {
	for _, allowed := range m.transitions[m.current] {
		if allowed == target {
			m.current = target
			return nil
		}
	}

	return &ErrInvalidTransition{From: m.current, To: target}
}

// Reset forces the machine back to the given view regardless of the table.
// Used when a flow completes and the whole screen returns to its initial state.
func (m *Machine) Reset(initial View) {
	m.current = initial
}
