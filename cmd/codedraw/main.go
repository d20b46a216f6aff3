package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/codedraw/audio"
	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/content"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/input"
	"github.com/lixenwraith/codedraw/render"
	"github.com/lixenwraith/codedraw/service"
	"github.com/lixenwraith/codedraw/status"
	"github.com/lixenwraith/codedraw/system"
	"github.com/lixenwraith/codedraw/vmath"
)

var (
	configFlag  = flag.String("config", "", "YAML config file, built-in defaults when empty")
	contentFlag = flag.String("content", "", "content pack file or directory, overrides the config")
	seedFlag    = flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	debugFlag   = flag.Bool("debug", false, "write logs to logs/codedraw.log")
	muteFlag    = flag.Bool("mute", false, "disable audio")
	dumpFlag    = flag.Bool("dump-config", false, "print the effective config as YAML and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(logDir, *debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *contentFlag, *seedFlag, *muteFlag)

	if *dumpFlag {
		out, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyFlags layers command line overrides on the loaded config
func applyFlags(cfg *config.Config, contentPath string, seed uint64, mute bool) {
	if contentPath != "" {
		cfg.Content.Path = contentPath
	}
	if seed != 0 {
		cfg.Engine.Seed = seed
	}
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = uint64(time.Now().UnixNano())
	}
	if mute {
		cfg.Audio.Enabled = false
	}
}

func run(cfg *config.Config) error {
	reg := status.NewRegistry()

	term := render.NewTerminal()
	contentSvc := content.NewService()
	player := audio.NewPlayer()

	hub := service.NewHub()
	for _, svc := range []service.Service{term, contentSvc, player} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(cfg); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	queue := event.NewEventQueue()
	clock := engine.NewPausableClock(nil)
	game := newGame(cfg, queue, clock, reg, contentSvc.Supplier())

	renderer := render.NewRenderer(term.Screen(), reg)
	game.AddSink(renderer)
	game.AddSink(player)
	game.Start()

	scheduler := engine.NewClockScheduler(game, clock, cfg.Engine.TickInterval)
	scheduler.Start()
	defer scheduler.Stop()

	translator := input.NewTranslator(queue, renderer)
	translator.OnMute = func() {
		log.Printf("audio muted: %t", player.ToggleMute())
	}
	translator.Run(term.Screen())
	scheduler.Stop()

	log.Printf("quit after %d ticks, score %d", scheduler.TickCount(), game.Session().Pool.Score())
	return nil
}

// newGame assembles the engine with both gameplay systems over one content source
func newGame(cfg *config.Config, queue *event.EventQueue, clock *engine.PausableClock, reg *status.Registry, src *content.Supplier) *engine.Game {
	game := engine.NewGame(cfg, queue, clock, reg)
	game.AddSystem(system.NewTypingSystem(cfg.Typing, src, vmath.NewFastRand(cfg.Engine.Seed+1)))
	game.AddSystem(system.NewTracingSystem(cfg.Tracing, src, vmath.NewFastRand(cfg.Engine.Seed+2)))
	return game
}
