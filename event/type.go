package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for FSM auto-transitions evaluated every update
	EventTick EventType = iota

	// === Mode Event ===

	// EventGameStart starts a new game from the main menu
	// Trigger: Mode router on confirm in MainMenu
	// Consumer: Mode FSM | Payload: nil
	EventGameStart

	// EventPauseToggle flips between Playing and Paused
	// Trigger: Mode router on cancel while Playing or Paused
	// Consumer: Mode FSM | Payload: nil
	EventPauseToggle

	// EventResume leaves the pause menu
	// Trigger: Pause menu "Resume"
	// Consumer: Mode FSM | Payload: nil
	EventResume

	// EventReturnToMenu abandons the running game
	// Trigger: Pause menu "Return to Main Menu"
	// Consumer: Mode FSM | Payload: nil
	EventReturnToMenu

	// EventExitRequest asks the host process to quit
	// Trigger: Pause menu "Exit", cancel in MainMenu
	// Consumer: GameContext | Payload: nil
	EventExitRequest

	// === Audio Event ===

	// EventSoundRequest requests effect playback
	// Trigger: Player fire, explosions
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventMusicStart begins the background track
	// Trigger: Mode FSM entering a session
	// Consumer: AudioSystem | Payload: *MusicStartPayload
	EventMusicStart

	// EventMusicStop halts the background track
	// Trigger: Mode FSM leaving a session
	// Consumer: AudioSystem | Payload: nil
	EventMusicStop

	// EventMusicPause suspends the background track
	// Trigger: Mode FSM entering Paused
	// Consumer: AudioSystem | Payload: nil
	EventMusicPause

	// EventMusicResume continues a suspended track
	// Trigger: Mode FSM leaving Paused
	// Consumer: AudioSystem | Payload: nil
	EventMusicResume

	// EventVolumeChange sets a channel volume
	// Trigger: Pause menu volume adjustment
	// Consumer: AudioSystem | Payload: *VolumeChangePayload
	EventVolumeChange

	// === Gameplay Event ===

	// EventEnemyDestroyed reports a kill
	// Trigger: CombatSystem
	// Consumer: StatusSystem | Payload: *EnemyDestroyedPayload
	EventEnemyDestroyed

	// EventPlayerDamaged reports a lost life
	// Trigger: KineticSystem (enemy escaped), CombatSystem (hit)
	// Consumer: StatusSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventPowerUpCollected reports a pickup
	// Trigger: CombatSystem
	// Consumer: StatusSystem | Payload: *PowerUpCollectedPayload
	EventPowerUpCollected

	// EventLevelChanged reports a level change
	// Trigger: ProgressionSystem
	// Consumer: StatusSystem | Payload: *LevelChangedPayload
	EventLevelChanged

	eventTypeCount
)

// GameEvent is a queued event stamped with the frame that pushed it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
