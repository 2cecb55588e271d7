package fsm

import "fmt"

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition appends a transition to a source node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// OnEnter registers an action run every time id is entered
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit registers an action run every time id is left
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}

// Validate checks every transition target exists
// Must be called after all nodes are added and before Init
func (m *Machine[T]) Validate() error {
	for id, node := range m.nodes {
		if id == StateNone {
			return fmt.Errorf("state %q uses reserved id %d", node.Name, StateNone)
		}
		for i, t := range node.Transitions {
			if t.TargetID == StateNone {
				continue
			}
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %q transition %d targets missing state %d", node.Name, i, t.TargetID)
			}
		}
	}
	return nil
}
