package core

// PowerUpType identifies the effect a pickup applies
type PowerUpType uint8

const (
	PowerUpHealth PowerUpType = iota
	PowerUpDamage
	PowerUpSpeed
	PowerUpRapidFire
	PowerUpMultiShot
	PowerUpTypeCount
)

func (p PowerUpType) String() string {
	switch p {
	case PowerUpHealth:
		return "Health"
	case PowerUpDamage:
		return "Damage"
	case PowerUpSpeed:
		return "Speed"
	case PowerUpRapidFire:
		return "RapidFire"
	case PowerUpMultiShot:
		return "MultiShot"
	default:
		return "Unknown"
	}
}
