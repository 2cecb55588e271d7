package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init validates the graph and enters the initial state
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	if err := m.Validate(); err != nil {
		return err
	}
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}

	m.InitialStateID = initialID
	m.activeStateID = initialID
	for _, fn := range node.OnEnter {
		fn(ctx)
	}
	return nil
}

// Current returns the active state
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// StateName returns the registered name of id
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return fmt.Sprintf("state(%d)", id)
}

// HandleEvent evaluates the active state's transitions for ev
// Returns true if a transition (internal or external) fired
func (m *Machine[T]) HandleEvent(ctx T, ev EventID) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok || node.Terminal {
		return false
	}

	for _, t := range node.Transitions {
		if t.Event != ev {
			continue
		}
		if t.Guard != nil && !t.Guard(ctx) {
			continue
		}

		if t.TargetID == StateNone {
			if t.Action != nil {
				t.Action(ctx)
			}
			return true
		}

		m.transition(ctx, node, t)
		return true
	}

	return false
}

func (m *Machine[T]) transition(ctx T, from *Node[T], t Transition[T]) {
	for _, fn := range from.OnExit {
		fn(ctx)
	}
	if t.Action != nil {
		t.Action(ctx)
	}

	m.activeStateID = t.TargetID
	to := m.nodes[t.TargetID]
	for _, fn := range to.OnEnter {
		fn(ctx)
	}
}
