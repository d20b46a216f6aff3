package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveBuzz // fundamental with two decaying harmonics
)

// oscillator is a finite tone of one waveform
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveBuzz:
			p := 2 * math.Pi * o.phase
			val = (math.Sin(p) + 0.5*math.Sin(2*p) + 0.25*math.Sin(3*p)) / 1.75
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position >= e.totalSamples:
			vol = 0
		case e.position < e.attackSamples:
			vol = float64(e.position) / float64(e.attackSamples)
		case e.releaseSamples > 0 && e.position >= releaseStart:
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, 0 or below is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// newVolumeExp applies a master gain given as a base 2 exponent
func newVolumeExp(s beep.Streamer, exp float64) beep.Streamer {
	if exp == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: exp}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, parameter.SoundAttack, parameter.SoundRelease, rate)
}

// chime is a tone with an octave overtone
func chime(freq float64, rate beep.SampleRate) beep.Streamer {
	d := parameter.ChimeDuration
	return beep.Mix(
		newVolume(tone(freq, d, WaveSine, rate), 0.7),
		newVolume(tone(freq*2, d, WaveSine, rate), 0.3),
	)
}

// NewSound builds the streamer for a cue sound at unity master gain
func NewSound(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundMistype:
		return tone(parameter.MistypeSoundFreq, parameter.MistypeSoundDuration, WaveBuzz, rate)
	case core.SoundLineComplete:
		return chime(parameter.LineCompleteFreq, rate)
	case core.SoundShapeComplete:
		return chime(parameter.ShapeCompleteFreq, rate)
	case core.SoundDiscard:
		return newVolume(tone(parameter.DiscardSoundFreq, parameter.DiscardSoundDuration, WaveSaw, rate), 0.5)
	case core.SoundPromote:
		return beep.Seq(chime(parameter.LineCompleteFreq, rate), chime(parameter.PromoteFreq, rate))
	case core.SoundGameOver:
		steps := make([]beep.Streamer, parameter.GameOverStepCount)
		freq := parameter.GameOverStartFreq
		for i := range steps {
			steps[i] = tone(freq, parameter.GameOverStepDuration, WaveSquare, rate)
			freq *= parameter.GameOverStepRatio
		}
		return newVolume(beep.Seq(steps...), 0.4)
	default:
		return nil
	}
}
