package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/content"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/status"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, "packs/", 42, true)

	if cfg.Content.Path != "packs/" {
		t.Errorf("Expected content path override, got %q", cfg.Content.Path)
	}
	if cfg.Engine.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Engine.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by -mute")
	}

	cfg = config.Default()
	applyFlags(cfg, "", 0, false)
	if cfg.Engine.Seed == 0 {
		t.Error("Expected a clock seed when none given")
	}
	if !cfg.Audio.Enabled || cfg.Content.Path != "" {
		t.Error("Expected config untouched without flags")
	}
}

func TestNewGameRunsBothEngines(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.Seed = 7

	queue := event.NewEventQueue()
	clock := engine.NewPausableClock(engine.NewManualTime(time.Unix(0, 0)))
	game := newGame(cfg, queue, clock, status.NewRegistry(), content.NewSupplier(content.DefaultPack(), 7))

	var last *engine.Snapshot
	game.AddSink(sinkFunc(func(s *engine.Snapshot) { last = s }))
	game.Start()
	game.Tick(cfg.Engine.TickInterval)

	if last == nil {
		t.Fatal("Expected a snapshot")
	}
	if last.Typing.State != core.TypingActive || len(last.Typing.Target) == 0 {
		t.Errorf("Expected an active typing line, got %+v", last.Typing)
	}
	if len(last.Tracing.Guide) < 2 {
		t.Errorf("Expected a guide shape, got %v", last.Tracing.Guide)
	}

	event.EmitCharacter(queue, last.Typing.Target[0])
	game.Tick(cfg.Engine.TickInterval)
	if last.Typing.Cursor != 1 || last.Score == 0 {
		t.Errorf("Expected first character scored, got cursor %d score %d", last.Typing.Cursor, last.Score)
	}
}

type sinkFunc func(*engine.Snapshot)

func (f sinkFunc) Present(s *engine.Snapshot) { f(s) }
