package core

// GameMode is the top-level mode the simulation is in
// Game over is not a mode: depleting lives returns to ModeMainMenu
type GameMode uint8

const (
	ModeMainMenu GameMode = iota
	ModePlaying
	ModePaused
)

func (m GameMode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
