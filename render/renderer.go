package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/mode"
)

const (
	volumeBarWidth = 10
	starCount      = 40
)

// Enemy glyph per variant
var enemyGlyph = [...]rune{'W', 'V', 'X'}

// Renderer draws snapshots to a tcell screen
// It reads only the snapshot and never touches the world
type Renderer struct {
	screen tcell.Screen
	fieldW float64
	fieldH float64
	layout Layout
	base   tcell.Style

	// Debug replaces the key hints with the status line
	Debug bool
}

// NewRenderer creates a renderer for a playfield of the given pixel size
func NewRenderer(screen tcell.Screen, fieldW, fieldH float64) *Renderer {
	r := &Renderer{
		screen: screen,
		fieldW: fieldW,
		fieldH: fieldH,
		base:   tcell.StyleDefault.Background(RgbBackground.Color()),
	}
	r.Resize()
	return r
}

// Resize recomputes the layout from the current screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, r.fieldW, r.fieldH)
}

// Layout returns the current cell mapping
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws one frame; status is shown on the bottom row in debug mode
func (r *Renderer) Render(s *engine.Snapshot, status string) {
	r.fill()

	if !r.layout.Usable() {
		r.drawCentered(r.layout.ScreenH/2, "terminal too small", r.fg(RgbHUD))
		r.screen.Show()
		return
	}

	r.drawFrame()
	r.drawStars(s.SimTime)

	if s.Mode != core.ModeMainMenu {
		r.drawPowerUps(s.PowerUps)
		r.drawEnemies(s.Enemies, s.EnemyVariants)
		r.drawProjectiles(s.Projectiles)
		r.drawPlayer(s.Player)
		r.drawExplosions(s.Explosions)
		r.drawNotifications(s.Notifications)
		r.drawHUD(s)
	}

	switch s.Mode {
	case core.ModeMainMenu:
		r.drawMainMenu(s)
	case core.ModePaused:
		r.drawPauseMenu(s)
	}

	r.drawStatus(s.Mode, status)
	r.screen.Show()
}

func (r *Renderer) fg(c RGB) tcell.Style {
	return r.base.Foreground(c.Color())
}

func (r *Renderer) fill() {
	for y := 0; y < r.layout.ScreenH; y++ {
		for x := 0; x < r.layout.ScreenW; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.base)
		}
	}
}

// drawText writes s from x, clipped to the screen; returns the end column
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.layout.ScreenH {
		return x
	}
	for _, ch := range s {
		if x >= r.layout.ScreenW {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	x := (r.layout.ScreenW - runewidth.StringWidth(s)) / 2
	r.drawText(x, y, s, style)
}

func (r *Renderer) drawFrame() {
	l := r.layout
	style := r.fg(RgbBorder)
	left, right := l.FieldX-1, l.FieldX+l.Cols
	top, bottom := l.FieldY-1, l.FieldY+l.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// drawStars scrolls a fixed pseudo-random starfield with simulation time
func (r *Renderer) drawStars(simTime float64) {
	l := r.layout
	style := r.fg(RgbStar)
	for i := 0; i < starCount; i++ {
		// Golden-ratio spread keeps the field even without a random source
		fx := math.Mod(float64(i)*0.618034, 1)
		fy := math.Mod(float64(i)*0.381966+simTime*0.05*float64(1+i%3), 1)
		x := l.FieldX + int(fx*float64(l.Cols))
		y := l.FieldY + int(fy*float64(l.Rows))
		r.screen.SetContent(x, y, '·', nil, style)
	}
}

// fillRect draws glyph over every cell of a playfield rect
func (r *Renderer) fillRect(b core.Rect, glyph rune, style tcell.Style) {
	x0, y0, x1, y1, ok := r.layout.Span(b)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawPlayer(p engine.PlayerView) {
	style := r.fg(RgbPlayer)
	r.fillRect(p.Bounds, '█', style)
	x, y := r.layout.Cell(core.Vec2{X: p.Bounds.Center().X, Y: p.Bounds.Y})
	r.screen.SetContent(x, y, '▲', nil, style)
}

func (r *Renderer) drawEnemies(bounds []core.Rect, variants []int) {
	for i, b := range bounds {
		v := 0
		if i < len(variants) {
			v = variants[i]
		}
		glyph := enemyGlyph[(v%len(enemyGlyph)+len(enemyGlyph))%len(enemyGlyph)]
		r.fillRect(b, glyph, r.fg(enemyColor(v)))
	}
}

func (r *Renderer) drawProjectiles(shots []engine.ProjectileView) {
	for _, p := range shots {
		glyph := '|'
		if p.Faction.Hostile() {
			glyph = '!'
		}
		x, y := r.layout.Cell(p.Bounds.Center())
		r.screen.SetContent(x, y, glyph, nil, r.fg(shotColor(p.Faction)))
	}
}

func (r *Renderer) drawPowerUps(pickups []engine.PowerUpView) {
	for _, p := range pickups {
		if p.Type >= core.PowerUpTypeCount {
			continue
		}
		g := powerUpGlyph[p.Type]
		x, y := r.layout.Cell(p.Bounds.Center())
		r.screen.SetContent(x, y, g.r, nil, r.fg(g.rgb).Bold(true))
	}
}

func (r *Renderer) drawExplosions(explosions []engine.ExplosionView) {
	for _, e := range explosions {
		glyph := '*'
		if e.Progress > 0.5 {
			glyph = '·'
		}
		r.fillRect(e.Bounds, glyph, r.fg(explosionColor(e.Progress)))
	}
}

// explosionColor runs hot yellow through red into the background in HCL space
func explosionColor(progress float64) RGB {
	hot := colorful.Color{R: 1, G: 0.9, B: 0.3}
	warm := colorful.Color{R: 0.9, G: 0.25, B: 0.1}
	bg := colorful.Color{
		R: float64(RgbBackground.R) / 255,
		G: float64(RgbBackground.G) / 255,
		B: float64(RgbBackground.B) / 255,
	}

	var c colorful.Color
	if progress < 0.5 {
		c = hot.BlendHcl(warm, progress*2)
	} else {
		c = warm.BlendHcl(bg, (progress-0.5)*2)
	}
	cr, cg, cb := c.Clamped().RGB255()
	return RGB{cr, cg, cb}
}

// drawNotifications stacks messages under the top frame, fading by alpha
func (r *Renderer) drawNotifications(notes []engine.NotificationView) {
	y := r.layout.FieldY
	for _, n := range notes {
		if y >= r.layout.FieldY+r.layout.Rows {
			break
		}
		c := RgbBackground.Blend(RgbNotice, n.Alpha)
		r.drawCentered(y, n.Message, r.fg(c))
		y++
	}
}

func (r *Renderer) drawHUD(s *engine.Snapshot) {
	hud := r.fg(RgbHUD)
	dim := r.fg(RgbHUDDim)
	p := s.Player

	x := r.drawText(1, 0, fmt.Sprintf("SCORE %d", s.Score), hud)
	x = r.drawText(x+2, 0, fmt.Sprintf("LEVEL %d", s.Level), hud)
	x = r.drawText(x+2, 0, "LIVES ", hud)
	x = r.drawText(x, 0, strings.Repeat("♥", max(p.Lives, 0)), r.fg(RgbShotEnemy))
	x = r.drawText(x+2, 0, fmt.Sprintf("DMG x%.1f SPD x%.1f", p.DamageMultiplier, p.SpeedMultiplier), dim)

	if t := p.Buffs[component.BuffRapidFire]; t > 0 {
		x = r.drawText(x+2, 0, fmt.Sprintf("RAPID %.1fs", t), r.fg(RgbShotRapid))
	}
	if t := p.Buffs[component.BuffMultiShot]; t > 0 {
		r.drawText(x+2, 0, fmt.Sprintf("MULTI %.1fs", t), r.fg(RgbShotMulti))
	}
}

func (r *Renderer) drawMainMenu(s *engine.Snapshot) {
	mid := r.layout.FieldY + r.layout.Rows/2
	r.drawCentered(mid-2, "S T A R L I G H T   R E A V E R", r.fg(RgbTitle).Bold(true))
	r.drawCentered(mid+1, "Enter  start", r.fg(RgbHUD))
	r.drawCentered(mid+2, "Esc    quit", r.fg(RgbHUDDim))
	if s.Score > 0 {
		r.drawCentered(mid+4, fmt.Sprintf("last score %d", s.Score), r.fg(RgbHUDDim))
	}
}

func (r *Renderer) drawPauseMenu(s *engine.Snapshot) {
	top := r.layout.FieldY + max((r.layout.Rows-int(mode.OptionCount)-2)/2, 0)
	r.drawCentered(top, "PAUSED", r.fg(RgbTitle).Bold(true))

	for i := mode.MenuOption(0); i < mode.OptionCount; i++ {
		style := r.fg(RgbHUD)
		marker := "  "
		if int(i) == s.MenuSelected {
			style = r.fg(RgbSelected).Bold(true)
			marker = "> "
		}
		line := marker + i.Label()
		if ch, ok := i.Channel(); ok {
			line = fmt.Sprintf("%-20s %s", line, volumeBar(s.Volumes[ch]))
		}
		r.drawCentered(top+2+int(i), line, style)
	}
}

// volumeBar renders v in [0,1] as a fixed-width gauge with a percentage
func volumeBar(v float64) string {
	filled := int(math.Round(v * volumeBarWidth))
	filled = max(0, min(filled, volumeBarWidth))
	return fmt.Sprintf("[%s%s] %3d%%",
		strings.Repeat("#", filled),
		strings.Repeat(".", volumeBarWidth-filled),
		int(math.Round(v*100)))
}

func (r *Renderer) drawStatus(m core.GameMode, status string) {
	y := r.layout.ScreenH - 1
	if r.Debug && status != "" {
		r.drawText(0, y, status, r.fg(RgbHUDDim))
		return
	}

	var hint string
	switch m {
	case core.ModeMainMenu:
		hint = " enter start · esc quit"
	case core.ModePlaying:
		hint = " arrows/wasd move · space shoot · esc pause"
	case core.ModePaused:
		hint = " up/down select · left/right adjust · enter choose · esc resume"
	}
	r.drawText(0, y, hint, r.fg(RgbHUDDim))
}
