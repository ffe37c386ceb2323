package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlight-reaver/core"
)

// RGB stores explicit 8-bit channels so fades can be computed before tcell sees them
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	RgbBackground = RGB{8, 8, 20}    // Deep space
	RgbBorder     = RGB{60, 60, 90}  // Playfield frame
	RgbStar       = RGB{70, 70, 100} // Parallax dots
	RgbHUD        = RGB{230, 230, 230}
	RgbHUDDim     = RGB{140, 140, 160}
	RgbTitle      = RGB{255, 200, 60}
	RgbSelected   = RGB{255, 165, 0}
	RgbPlayer     = RGB{80, 220, 255}
	RgbShotPlayer = RGB{255, 255, 120}
	RgbShotMulti  = RGB{120, 255, 120}
	RgbShotRapid  = RGB{255, 140, 255}
	RgbShotEnemy  = RGB{255, 70, 70}
	RgbExplosion  = RGB{255, 180, 40}
	RgbNotice     = RGB{255, 255, 255}
)

// Enemy tint per variant
var rgbEnemy = [...]RGB{
	{220, 80, 80},
	{200, 120, 255},
	{120, 200, 80},
}

// Pickup glyph and tint per power-up type
var powerUpGlyph = [core.PowerUpTypeCount]struct {
	r   rune
	rgb RGB
}{
	core.PowerUpHealth:    {'+', RGB{80, 255, 80}},
	core.PowerUpDamage:    {'D', RGB{255, 90, 90}},
	core.PowerUpSpeed:     {'S', RGB{80, 200, 255}},
	core.PowerUpRapidFire: {'R', RGB{255, 140, 255}},
	core.PowerUpMultiShot: {'M', RGB{255, 220, 80}},
}

func enemyColor(variant int) RGB {
	if variant < 0 {
		variant = 0
	}
	return rgbEnemy[variant%len(rgbEnemy)]
}

func shotColor(f core.Faction) RGB {
	switch f {
	case core.FactionMultiShot:
		return RgbShotMulti
	case core.FactionRapidFire:
		return RgbShotRapid
	case core.FactionEnemy:
		return RgbShotEnemy
	default:
		return RgbShotPlayer
	}
}
