package status

import (
	"errors"
	"fmt"
)

// Action is a reviewer-initiated transition. The string value doubles as the
// status query parameter sent to the record store.
type Action string

const (
	ActionApprove Action = "Approved"
	ActionReject  Action = "Rejected"
)

// String returns the string representation of the action.
func (a Action) String() string {
	return string(a)
}

// ErrInvalidTransition is returned when an action is not permitted from the
// current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Machine is an immutable transition table from status to permitted actions.
type Machine struct {
	transitions map[Status]map[Action]Status
	order       map[Status][]Action
}

// Builder configures a Machine.
type Builder struct {
	machine *Machine
}

// NewBuilder creates a new machine builder.
func NewBuilder() *Builder {
	return &Builder{machine: &Machine{
		transitions: make(map[Status]map[Action]Status),
		order:       make(map[Status][]Action),
	}}
}

// Permit allows the action to move from to the target status.
func (b *Builder) Permit(from Status, action Action, to Status) *Builder {
	m := b.machine
	if m.transitions[from] == nil {
		m.transitions[from] = make(map[Action]Status)
	}
	if _, dup := m.transitions[from][action]; dup {
		panic(fmt.Sprintf("duplicate transition %s from %s", action, from))
	}
	m.transitions[from][action] = to
	m.order[from] = append(m.order[from], action)
	return b
}

// Build returns the configured machine.
func (b *Builder) Build() *Machine {
	return b.machine
}

// AllowedActions returns the actions permitted from s, in configuration
// order. A status with no configured transitions yields an empty slice.
func (m *Machine) AllowedActions(s Status) []Action {
	return append([]Action{}, m.order[s]...)
}

// CanApply returns true if the action is permitted from s.
func (m *Machine) CanApply(s Status, action Action) bool {
	_, ok := m.transitions[s][action]
	return ok
}

// Apply returns the status reached by taking action from s, or
// ErrInvalidTransition when the action is not permitted.
func (m *Machine) Apply(s Status, action Action) (Status, error) {
	to, ok := m.transitions[s][action]
	if !ok {
		return s, fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, s)
	}
	return to, nil
}

var (
	claimMachine = NewBuilder().
			Permit(Pending, ActionApprove, Approved).
			Permit(Pending, ActionReject, Rejected).
			Build()

	flightMachine = NewBuilder().
			Permit(Pending, ActionApprove, Approved).
			Permit(Pending, ActionReject, Rejected).
			Build()
)

// ClaimMachine returns the transition table for medical and vehicle claims.
func ClaimMachine() *Machine {
	return claimMachine
}

// FlightMachine returns the transition table for flight reservations.
// Booked is reachable only through the external booking process, so the
// machine never permits it.
func FlightMachine() *Machine {
	return flightMachine
}
