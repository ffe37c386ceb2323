package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot     SoundType = iota // Player shot
	SoundExplosion                  // Enemy destroyed or player hit
	SoundTypeCount
)

// AudioChannel is an independently adjustable volume channel
type AudioChannel int

const (
	ChannelMusic AudioChannel = iota
	ChannelShoot
	ChannelExplosion
	ChannelCount
)

func (c AudioChannel) String() string {
	switch c {
	case ChannelMusic:
		return "music"
	case ChannelShoot:
		return "shoot"
	case ChannelExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// ChannelForSound maps an effect to the channel whose volume governs it
func ChannelForSound(s SoundType) AudioChannel {
	if s == SoundShoot {
		return ChannelShoot
	}
	return ChannelExplosion
}
