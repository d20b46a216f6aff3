package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/codedraw/core"
)

func drainAll(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveBuzz} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drainAll(osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: sample out of range: %f", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got: %v", osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(250, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if v := samples[50][0]; v != 1.0 && v != -1.0 {
		t.Errorf("Expected full level in sustain, got %f", v)
	}
	if v := samples[99][0]; v > 0.11 || v < -0.11 {
		t.Errorf("Expected near silence at release end, got %f", v)
	}
}

func TestNewSoundCoversEveryType(t *testing.T) {
	rate := beep.SampleRate(44100)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		s := NewSound(st, rate)
		if s == nil {
			t.Errorf("Expected streamer for %s", st)
			continue
		}
		if n, _ := drainAll(s); n == 0 {
			t.Errorf("Expected samples for %s", st)
		}
	}
	if NewSound(core.SoundTypeCount, rate) != nil {
		t.Error("Expected nil for unknown sound")
	}
}
