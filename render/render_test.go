package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/mode"
)

// MockScreen records SetContent into a grid
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         [][]rune
	shows         int
}

func newMockScreen(w, h int) *MockScreen {
	m := &MockScreen{width: w, height: h, cells: make([][]rune, h)}
	for y := range m.cells {
		m.cells[y] = make([]rune, w)
	}
	return m
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }

func (m *MockScreen) Show() { m.shows++ }

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[y][x] = mainc
}

func (m *MockScreen) row(y int) string {
	return string(m.cells[y])
}

func (m *MockScreen) contains(s string) bool {
	for y := range m.cells {
		if strings.Contains(m.row(y), s) {
			return true
		}
	}
	return false
}

func TestLayoutFitsAndCenters(t *testing.T) {
	l := NewLayout(100, 40, 700, 600)
	if !l.Usable() {
		t.Fatalf("layout unusable: %+v", l)
	}
	if l.Cols > 98 || l.Rows > 36 {
		t.Errorf("field overflows screen: %dx%d", l.Cols, l.Rows)
	}
	if l.PixelsPerRow != l.PixelsPerCol*cellAspect {
		t.Error("aspect not preserved")
	}

	// Corners map onto the first and last field cells
	x, y := l.Cell(core.Vec2{})
	if x != l.FieldX || y != l.FieldY {
		t.Errorf("origin -> (%d,%d), want (%d,%d)", x, y, l.FieldX, l.FieldY)
	}
	x, y = l.Cell(core.Vec2{X: 699.9, Y: 599.9})
	if x != l.FieldX+l.Cols-1 || y != l.FieldY+l.Rows-1 {
		t.Errorf("far corner -> (%d,%d)", x, y)
	}
}

func TestLayoutSpanClips(t *testing.T) {
	l := NewLayout(100, 40, 700, 600)

	if _, _, _, _, ok := l.Span(core.Rect{X: 10, Y: -200, Width: 32, Height: 32}); ok {
		t.Error("rect above the field should not be drawn")
	}

	x0, y0, x1, y1, ok := l.Span(core.Rect{X: -10, Y: 0, Width: 32, Height: 32})
	if !ok {
		t.Fatal("partially visible rect dropped")
	}
	if x0 != l.FieldX || y0 != l.FieldY || x1 < x0 || y1 < y0 {
		t.Errorf("span = (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}

	// Tiny rects still cover one cell
	x0, y0, x1, y1, ok = l.Span(core.Rect{X: 350, Y: 300, Width: 1, Height: 1})
	if !ok || x0 != x1 || y0 != y1 {
		t.Errorf("tiny rect span = (%d,%d)-(%d,%d) ok=%v", x0, y0, x1, y1, ok)
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := newMockScreen(10, 5)
	r := NewRenderer(screen, 700, 600)
	r.Render(&engine.Snapshot{}, "")
	if screen.shows != 1 {
		t.Error("frame not shown")
	}
	if !screen.contains("too small") && !screen.contains("too") {
		t.Error("size warning missing")
	}
}

func TestRenderMainMenu(t *testing.T) {
	screen := newMockScreen(100, 40)
	r := NewRenderer(screen, 700, 600)
	r.Render(&engine.Snapshot{Mode: core.ModeMainMenu}, "")

	if !screen.contains("S T A R L I G H T") {
		t.Error("title missing")
	}
	if screen.contains("SCORE") {
		t.Error("HUD drawn on the main menu")
	}
}

func TestRenderPlaying(t *testing.T) {
	screen := newMockScreen(100, 40)
	r := NewRenderer(screen, 700, 600)

	s := &engine.Snapshot{
		Mode:  core.ModePlaying,
		Score: 1200,
		Level: 2,
		Player: engine.PlayerView{
			Bounds: core.Rect{X: 340, Y: 540, Width: 20, Height: 20},
			Lives:  3,
		},
		Enemies:       []core.Rect{{X: 100, Y: 100, Width: 32, Height: 32}},
		EnemyVariants: []int{2},
		PowerUps: []engine.PowerUpView{
			{Bounds: core.Rect{X: 500, Y: 300, Width: 15, Height: 15}, Type: core.PowerUpMultiShot},
		},
		Notifications: []engine.NotificationView{{Message: "Damage Increased!", Alpha: 1}},
	}
	r.Render(s, "")

	if !screen.contains("SCORE 1200") || !screen.contains("LEVEL 2") {
		t.Errorf("HUD row = %q", screen.row(0))
	}
	if !strings.Contains(screen.row(0), "♥♥♥") {
		t.Error("lives not drawn")
	}
	if !screen.contains("Damage Increased!") {
		t.Error("notification missing")
	}

	l := r.Layout()
	x, y := l.Cell(core.Vec2{X: 350, Y: 540})
	if screen.cells[y][x] != '▲' {
		t.Errorf("player nose = %q", screen.cells[y][x])
	}
	x, y = l.Cell(core.Vec2{X: 116, Y: 116})
	if screen.cells[y][x] != 'X' {
		t.Errorf("enemy glyph = %q", screen.cells[y][x])
	}
	x, y = l.Cell(core.Vec2{X: 507.5, Y: 307.5})
	if screen.cells[y][x] != 'M' {
		t.Errorf("power-up glyph = %q", screen.cells[y][x])
	}
}

func TestRenderPauseMenu(t *testing.T) {
	screen := newMockScreen(100, 40)
	r := NewRenderer(screen, 700, 600)

	s := &engine.Snapshot{
		Mode:         core.ModePaused,
		MenuSelected: int(mode.OptionShootVolume),
		Volumes:      [core.ChannelCount]float64{0.5, 0.3, 1},
	}
	r.Render(s, "")

	if !screen.contains("PAUSED") {
		t.Error("pause title missing")
	}
	if !screen.contains("> " + mode.OptionShootVolume.Label()) {
		t.Error("selection marker not on the selected entry")
	}
	if !screen.contains("[###.......]  30%") {
		t.Error("shoot volume gauge missing")
	}
	if !screen.contains(mode.OptionExit.Label()) {
		t.Error("exit entry missing")
	}
}

func TestRenderDebugStatus(t *testing.T) {
	screen := newMockScreen(100, 40)
	r := NewRenderer(screen, 700, 600)
	r.Debug = true
	r.Render(&engine.Snapshot{Mode: core.ModePlaying}, "engine.ticks=42")

	if !strings.HasPrefix(screen.row(39), "engine.ticks=42") {
		t.Errorf("status row = %q", screen.row(39))
	}
}

func TestVolumeBar(t *testing.T) {
	cases := map[float64]string{
		0:   "[..........]   0%",
		0.5: "[#####.....]  50%",
		1:   "[##########] 100%",
	}
	for v, want := range cases {
		if got := volumeBar(v); got != want {
			t.Errorf("volumeBar(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestExplosionColorFades(t *testing.T) {
	start := explosionColor(0)
	end := explosionColor(1)
	if start.R < 200 {
		t.Errorf("explosion should start hot, got %+v", start)
	}
	// End of the fade lands on the background within rounding
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	if d(end.R, RgbBackground.R) > 2 || d(end.G, RgbBackground.G) > 2 || d(end.B, RgbBackground.B) > 2 {
		t.Errorf("explosion end %+v not background %+v", end, RgbBackground)
	}
}
