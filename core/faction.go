package core

// Faction tags the origin of a projectile and selects its collision rules
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionMultiShot
	FactionRapidFire
	FactionEnemy
	FactionCount
)

// PlayerFactions lists the factions that can destroy enemies, in collision order
var PlayerFactions = [...]Faction{FactionPlayer, FactionMultiShot, FactionRapidFire}

// Hostile reports whether projectiles of this faction damage the player
func (f Faction) Hostile() bool {
	return f == FactionEnemy
}

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionMultiShot:
		return "multishot"
	case FactionRapidFire:
		return "rapidfire"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
