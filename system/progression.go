package system

import (
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

// Level derives the level from cumulative score: floor(score/perLevel) + 1
func Level(score, perLevel int) int {
	if score < 0 || perLevel <= 0 {
		return 1
	}
	return score/perLevel + 1
}

// SpawnInterval derives the enemy spawn interval in seconds from level
// The step count truncates, so the interval only shrinks every SpawnLevelsPerStep levels
func SpawnInterval(level int, cfg parameter.EnemyConfig) float64 {
	steps := 0
	if cfg.SpawnLevelsPerStep > 0 {
		steps = level / cfg.SpawnLevelsPerStep
	}
	return max(cfg.SpawnInterval-float64(steps)*cfg.SpawnStep, cfg.SpawnFloor)
}

// syncLevel re-derives the level and announces a change
func syncLevel(w *engine.World) {
	g := w.Resource.Game
	level := Level(g.Score, w.Resource.Config.Scoring.PointsPerLevel)
	if level == g.Level {
		return
	}
	g.Level = level
	w.PushEvent(event.EventLevelChanged, &event.LevelChangedPayload{Level: level})
}

// ProgressionSystem keeps the level consistent with score
// Combat re-derives immediately after kills; this pass covers any other score change
type ProgressionSystem struct {
	world *engine.World
}

func NewProgressionSystem(world *engine.World) engine.System {
	return &ProgressionSystem{world: world}
}

func (s *ProgressionSystem) Init() {}

func (s *ProgressionSystem) Name() string {
	return "progression"
}

func (s *ProgressionSystem) Priority() int {
	return parameter.PriorityProgression
}

func (s *ProgressionSystem) Update() {
	syncLevel(s.world)
}
