package asset

// DefaultModeFSMConfig is the game mode graph
// Session wraps a running game so Playing <-> Paused never re-enters it
const DefaultModeFSMConfig = `
initial = "MainMenu"

[states.MainMenu]
parent = "Root"
transitions = [
    { trigger = "EventGameStart", target = "Playing" },
]

[states.Session]
parent = "Root"
on_enter = [
    { action = "ResetWorld" },
    { action = "EmitEvent", event = "EventMusicStart", payload = { bpm = 132 } },
]
on_exit = [
    { action = "EmitEvent", event = "EventMusicStop" },
]

[states.Playing]
parent = "Session"
transitions = [
    { trigger = "EventPauseToggle", target = "Paused" },
    { trigger = "EventReturnToMenu", target = "MainMenu" },
    { trigger = "Tick", target = "MainMenu", guard = "LivesDepleted" },
]

[states.Paused]
parent = "Session"
on_enter = [
    { action = "EmitEvent", event = "EventMusicPause" },
]
on_exit = [
    { action = "EmitEvent", event = "EventMusicResume" },
]
transitions = [
    { trigger = "EventPauseToggle", target = "Playing" },
    { trigger = "EventResume", target = "Playing" },
    { trigger = "EventReturnToMenu", target = "MainMenu" },
]
`
