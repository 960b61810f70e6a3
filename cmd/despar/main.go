// Command despar is a terminal survival game over the particle collision core:
// steer the avatar, swallow particles, and outlast the panic and click events.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/despar/audio"
	"github.com/lixenwraith/despar/config"
	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/engine"
	"github.com/lixenwraith/despar/entropy"
	"github.com/lixenwraith/despar/game"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/despar.log")
	seedFlag   = flag.Uint64("seed", 0, "Entropy seed; 0 uses the config value or the clock")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "despar: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Entropy.Seed = *seedFlag
	}
	if cfg.Entropy.Seed == 0 {
		cfg.Entropy.Seed = uint64(time.Now().UnixNano())
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	logger.Info("config loaded", "path", *configFlag, "seed", cfg.Entropy.Seed, "tick_rate", cfg.Timing.TickRate)

	board := entropy.NewSimulatedBoard(int64(cfg.Entropy.Seed))
	sim := engine.NewSimulation(cfg.Engine(), board.Mixer(cfg.Entropy.Seed), board.Thermometer())
	flags := &game.Flags{}
	session := game.NewSession(cfg, sim, flags, logger.WithPrefix("session"))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		} else {
			defer sound.Cleanup()
		}
	}

	done := make(chan struct{})
	var quitOnce sync.Once
	quit := func() { quitOnce.Do(func() { close(done) }) }

	st := &stick{}
	core.Go(func() { pollInput(screen, flags, st, sim.Arena(), quit) })

	wasOver := false
	clock := game.NewClock(cfg.TickInterval(), flags.Paused, func() {
		report := session.Tick(st.take())
		for _, cue := range cues(report, wasOver) {
			sound.Play(cue)
		}
		wasOver = report.Over
		draw(screen, session)
	})

	draw(screen, session)
	clock.Start()
	<-done
	clock.Stop()

	logger.Info("quit", "score", session.Score(), "ticks", clock.Ticks())
	return nil
}
