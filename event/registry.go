package event

import (
	"reflect"
	"strings"
)

// descriptor binds an EventType to its config name and payload type
type descriptor struct {
	name    string
	payload reflect.Type // nil when the event carries no payload
}

// descriptors is indexed by EventType; EventTick is resolved by name only
var descriptors [eventTypeCount]descriptor

var byName = make(map[string]EventType, eventTypeCount)

// register wires one event type; payload is a nil pointer of the payload struct type
func register(et EventType, name string, payload any) {
	if _, dup := byName[name]; dup || descriptors[et].name != "" {
		panic("event: duplicate registration of " + name)
	}
	d := descriptor{name: name}
	if payload != nil {
		d.payload = reflect.TypeOf(payload).Elem()
	}
	descriptors[et] = d
	byName[name] = et
}

func init() {
	register(EventGameStart, "EventGameStart", nil)
	register(EventPauseToggle, "EventPauseToggle", nil)
	register(EventResume, "EventResume", nil)
	register(EventReturnToMenu, "EventReturnToMenu", nil)
	register(EventExitRequest, "EventExitRequest", nil)

	register(EventSoundRequest, "EventSoundRequest", (*SoundRequestPayload)(nil))
	register(EventMusicStart, "EventMusicStart", (*MusicStartPayload)(nil))
	register(EventMusicStop, "EventMusicStop", nil)
	register(EventMusicPause, "EventMusicPause", nil)
	register(EventMusicResume, "EventMusicResume", nil)
	register(EventVolumeChange, "EventVolumeChange", (*VolumeChangePayload)(nil))

	register(EventEnemyDestroyed, "EventEnemyDestroyed", (*EnemyDestroyedPayload)(nil))
	register(EventPlayerDamaged, "EventPlayerDamaged", (*PlayerDamagedPayload)(nil))
	register(EventPowerUpCollected, "EventPowerUpCollected", (*PowerUpCollectedPayload)(nil))
	register(EventLevelChanged, "EventLevelChanged", (*LevelChangedPayload)(nil))
}

// GetEventType resolves a config name; "Tick" matches case-insensitively
func GetEventType(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := byName[name]
	return et, ok
}

// GetEventName is the inverse of GetEventType
func GetEventName(et EventType) string {
	if et == EventTick {
		return "Tick"
	}
	if et > EventTick && et < eventTypeCount && descriptors[et].name != "" {
		return descriptors[et].name
	}
	return "Unknown"
}

// NewPayloadStruct allocates a zero payload for et, nil for payload-less types
func NewPayloadStruct(et EventType) any {
	if et <= EventTick || et >= eventTypeCount || descriptors[et].payload == nil {
		return nil
	}
	return reflect.New(descriptors[et].payload).Interface()
}
