// reaver-soak runs the simulation headless with a scripted pilot and prints a
// deterministic fingerprint plus the final metrics
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/starlight-reaver/audio"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/game"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

var (
	ticksFlag  = flag.Int("ticks", 60*60*5, "Ticks to simulate")
	gamesFlag  = flag.Int("games", 3, "Restart from the menu until this many games have ended")
	seedFlag   = flag.Uint64("seed", 0, "Override the world seed (0 keeps the configured seed)")
	configFlag = flag.String("config", "", "Tuning config TOML")
	fsmFlag    = flag.String("fsm", "", "Mode machine TOML")
	outFlag    = flag.String("out", "", "Write the final snapshot as msgpack to this path")
	idleFlag   = flag.Bool("idle", false, "Never move or shoot")
	verbose    = flag.Bool("v", false, "Log transitions to stderr")
)

// GameResult is one finished run between start and game over
type GameResult struct {
	Score  int
	Level  int
	Frames int64
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verbose {
		log.SetOutput(os.Stderr)
	}
	_ = godotenv.Load() // Optional .env, same resolution as the terminal binary

	cfg, err := parameter.LoadConfig(*configFlag, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	cues := audio.NewRecorder(0)
	g, err := game.New(engine.Options{Config: cfg, FSMPath: *fsmFlag}, cues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game: %v\n", err)
		os.Exit(1)
	}

	results := soak(g, *ticksFlag, *gamesFlag, *idleFlag)

	snap := g.Snapshot()
	fp, err := snap.Fingerprint()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fingerprint: %v\n", err)
		os.Exit(1)
	}

	for i, r := range results {
		fmt.Printf("game %d: score=%d level=%d frames=%d\n", i+1, r.Score, r.Level, r.Frames)
	}
	fmt.Printf("frame=%d mode=%s fingerprint=%016x\n", snap.Frame, snap.Mode, fp)
	fmt.Printf("sounds: shoot=%d explosion=%d\n", cues.Sounds(core.SoundShoot), cues.Sounds(core.SoundExplosion))

	flat := g.Ctx.World.Resource.Status.Flatten()
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s=%s\n", k, flat[k])
	}

	if *outFlag != "" {
		data, err := snap.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outFlag, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *outFlag, err)
			os.Exit(1)
		}
	}
}

// soak ticks at the fixed frame interval, restarting from the menu after each game over
func soak(g *game.Game, ticks, games int, idle bool) []GameResult {
	dt := parameter.FrameUpdateInterval.Seconds()
	var (
		results []GameResult
		started int64
		last    engine.Snapshot
	)

	for i := 0; i < ticks && !g.Done(); i++ {
		var in core.InputFrame
		switch g.Ctx.Mode() {
		case core.ModeMainMenu:
			if len(results) >= games {
				return results
			}
			in.Press(core.IntentConfirm)
		case core.ModePlaying:
			if !idle {
				in = pilot(&last)
			}
		}

		before := g.Ctx.Mode()
		g.Tick(dt, in)
		snap := g.Snapshot()

		switch {
		case before == core.ModeMainMenu && snap.Mode == core.ModePlaying:
			started = snap.Frame
		case before == core.ModePlaying && snap.Mode == core.ModeMainMenu:
			// The world has been reset by now; the previous snapshot holds the outcome
			results = append(results, GameResult{
				Score:  last.Score,
				Level:  last.Level,
				Frames: snap.Frame - started,
			})
		}
		last = snap
	}
	return results
}

// pilot fires continuously and tracks the lowest enemy horizontally
func pilot(s *engine.Snapshot) core.InputFrame {
	var in core.InputFrame
	in.Hold(core.IntentShoot)

	target := -1
	for i, e := range s.Enemies {
		if target < 0 || e.Y > s.Enemies[target].Y {
			target = i
		}
	}
	if target < 0 {
		return in
	}

	px := s.Player.Bounds.Center().X
	ex := s.Enemies[target].Center().X
	switch {
	case ex < px-4:
		in.Hold(core.IntentMoveLeft)
	case ex > px+4:
		in.Hold(core.IntentMoveRight)
	}
	return in
}
