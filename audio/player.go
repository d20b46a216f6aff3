package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/codedraw/config"
	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/engine"
	"github.com/lixenwraith/codedraw/event"
	"github.com/lixenwraith/codedraw/parameter"
)

// Output receives finished cue streamers
type Output interface {
	Play(s beep.Streamer)
	Close()
}

// speakerOutput mixes cues into the system speaker
type speakerOutput struct {
	mixer *beep.Mixer
}

func newSpeakerOutput(rate beep.SampleRate) (*speakerOutput, error) {
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, err
	}
	out := &speakerOutput{mixer: &beep.Mixer{}}
	speaker.Play(out.mixer)
	return out, nil
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *speakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Player turns snapshot cues into sounds
// Without an output it stays silent, the game runs the same
type Player struct {
	rate    beep.SampleRate
	volume  float64
	out     Output
	muted   atomic.Bool
	played  atomic.Int64
	stopped sync.Once
}

// NewPlayer creates a silent player, Init attaches the speaker
func NewPlayer() *Player {
	return &Player{rate: beep.SampleRate(parameter.AudioSampleRate)}
}

// NewPlayerWithOutput creates a player writing to out
func NewPlayerWithOutput(out Output, volume float64) *Player {
	p := NewPlayer()
	p.out = out
	p.volume = volume
	return p
}

// Name implements service.Service
func (p *Player) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (p *Player) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *config.Config - audio section; a disabled section or missing device leaves the player silent
func (p *Player) Init(args ...any) error {
	cfg := config.Default()
	if len(args) > 0 {
		c, ok := args[0].(*config.Config)
		if !ok || c == nil {
			return fmt.Errorf("audio: expected *config.Config, got %T", args[0])
		}
		cfg = c
	}
	p.volume = cfg.Audio.Volume

	if !cfg.Audio.Enabled || p.out != nil {
		return nil
	}
	out, err := newSpeakerOutput(p.rate)
	if err != nil {
		log.Printf("Audio unavailable, running silent: %v", err)
		return nil
	}
	p.out = out
	return nil
}

// Start implements service.Service
func (p *Player) Start() error {
	return nil
}

// Stop implements service.Service
func (p *Player) Stop() error {
	p.stopped.Do(func() {
		if p.out != nil {
			p.out.Close()
		}
	})
	return nil
}

// Silent reports whether no output is attached
func (p *Player) Silent() bool {
	return p.out == nil
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Played returns the number of sounds sent to the output
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Play sends one sound to the output, false when silent or muted
func (p *Player) Play(st core.SoundType) bool {
	if p.out == nil || p.muted.Load() {
		return false
	}
	s := NewSound(st, p.rate)
	if s == nil {
		return false
	}
	p.out.Play(newVolumeExp(s, p.volume))
	p.played.Add(1)
	return true
}

// Present implements engine.Sink, each sound plays at most once per snapshot
func (p *Player) Present(snap *engine.Snapshot) {
	var seen [core.SoundTypeCount]bool
	for _, cue := range snap.Cues {
		st, ok := SoundFor(cue)
		if !ok || seen[st] {
			continue
		}
		seen[st] = true
		p.Play(st)
	}
}

// SoundFor maps a cue to its sound
func SoundFor(ev event.GameEvent) (core.SoundType, bool) {
	switch ev.Type {
	case event.EventMistype:
		return core.SoundMistype, true
	case event.EventLineComplete:
		return core.SoundLineComplete, true
	case event.EventShapeComplete:
		if p, ok := ev.Payload.(*event.ShapeCompletePayload); ok && !p.Success {
			return core.SoundDiscard, true
		}
		return core.SoundShapeComplete, true
	case event.EventAttemptDiscarded:
		return core.SoundDiscard, true
	case event.EventTierPromoted:
		return core.SoundPromote, true
	case event.EventGameOver:
		return core.SoundGameOver, true
	default:
		return 0, false
	}
}
