package fsm

// StateID is a unique identifier for a node
type StateID int

// StateNone is never a real state; as a transition target it marks an internal transition
const StateNone StateID = 0

// EventID identifies a trigger routed through HandleEvent
type EventID int

// Machine is a flat finite state machine driven by discrete events
// T is the context type passed to actions and guards (e.g., *engine.Game)
type Machine[T any] struct {
	// Graph Data (immutable after Init)
	nodes map[StateID]*Node[T]

	// InitialStateID is stored for Reset
	InitialStateID StateID

	// Runtime State
	activeStateID StateID
}

// Node represents a state
type Node[T any] struct {
	ID       StateID
	Name     string
	Terminal bool // Terminal nodes ignore every event

	// Lifecycle Actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order, first match wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Event    EventID
	TargetID StateID       // StateNone = internal, no exit/enter
	Guard    GuardFunc[T]  // nil = Always true
	Action   ActionFunc[T] // Runs after source exit and before target enter
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
