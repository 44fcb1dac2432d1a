package session

// Kind identifies a simulation command produced by input translation.
type Kind int

const (
	// ToggleCell flips the cell addressed by the command's X, Y.
	ToggleCell Kind = iota
	// Advance computes one generation immediately.
	Advance
	// TogglePause flips the clock between running and paused.
	TogglePause
	// Save writes the current grid to the save file.
	Save
	// Load replaces the grid with the saved one.
	Load
	// Proceed dismisses the instructions screen.
	Proceed
	// Quit ends the simulation after the current frame.
	Quit
)

// Command is one simulation action. X and Y carry the cell coordinate for
// ToggleCell and are ignored otherwise.
type Command struct {
	Kind Kind
	X, Y int
}
