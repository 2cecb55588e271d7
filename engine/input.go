package engine

// Input is one frame's snapshot of player intents
// Left and Right are held state, every other field is true only on the frame the action begins
type Input struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Fire   bool
	Select bool
	Pause  bool
}
