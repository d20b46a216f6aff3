package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/parameter"
)

// Range is a half-open [Min, Max) interval a promotion threshold is drawn from
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Ranges holds the threshold range in effect while an engine sits at each non-terminal tier
type Ranges [core.TierHard]Range

// GaugeConfig tunes the shared resource pool
type GaugeConfig struct {
	Max       float64 `yaml:"max"`
	DrainRate float64 `yaml:"drain_rate"` // units per second
}

// TypingConfig tunes keystroke scoring and combo promotion
type TypingConfig struct {
	CharGaugeBonus      float64       `yaml:"char_gauge_bonus"`
	ComboGaugeScale     float64       `yaml:"combo_gauge_scale"`
	ScorePerChar        int           `yaml:"score_per_char"`
	LineCompleteScore   int           `yaml:"line_complete_score"`
	MistypeGaugePenalty float64       `yaml:"mistype_gauge_penalty"`
	MistypeScorePenalty int           `yaml:"mistype_score_penalty"`
	FlashDuration       time.Duration `yaml:"flash_duration"`
	Promotion           Ranges        `yaml:"promotion"`
}

// TracingConfig tunes trace sampling, the validity gate and streak promotion
type TracingConfig struct {
	MinPointDistance     float64       `yaml:"min_point_distance"`
	AccuracyThreshold    float64       `yaml:"accuracy_threshold"`
	OffPathPenalty       float64       `yaml:"off_path_penalty"`
	AccuracyGaugeBonus   float64       `yaml:"accuracy_gauge_bonus"`
	ComboGaugeStep       float64       `yaml:"combo_gauge_step"`
	ComboScoreMultiplier float64       `yaml:"combo_score_multiplier"`
	BaseScore            float64       `yaml:"base_score"`
	MinDrawTime          time.Duration `yaml:"min_draw_time"`
	MinDrawLength        float64       `yaml:"min_draw_length"`
	DisplayHold          time.Duration `yaml:"display_hold"`
	ShapesForPromotion   int           `yaml:"shapes_for_promotion"`
	Promotion            Ranges        `yaml:"promotion"`
}

// EngineConfig tunes the tick loop
type EngineConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	MaxTickDelta time.Duration `yaml:"max_tick_delta"`
	Seed         uint64        `yaml:"seed"` // 0 picks a time-based seed
}

// AudioConfig toggles cue playback
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // beep effects.Volume exponent, base 2
}

// ContentConfig locates the content pack
type ContentConfig struct {
	Path          string `yaml:"path"` // empty uses the built-in pack
	MaxLineLength int    `yaml:"max_line_length"`
}

// Config is the complete tunable surface of the game
type Config struct {
	Gauge   GaugeConfig   `yaml:"gauge"`
	Typing  TypingConfig  `yaml:"typing"`
	Tracing TracingConfig `yaml:"tracing"`
	Engine  EngineConfig  `yaml:"engine"`
	Audio   AudioConfig   `yaml:"audio"`
	Content ContentConfig `yaml:"content"`
}

// Default returns the configuration built from parameter constants
func Default() *Config {
	return &Config{
		Gauge: GaugeConfig{
			Max:       parameter.GaugeMax,
			DrainRate: parameter.GaugeDrainRate,
		},
		Typing: TypingConfig{
			CharGaugeBonus:      parameter.TypingCharGaugeBonus,
			ComboGaugeScale:     parameter.TypingComboGaugeScale,
			ScorePerChar:        parameter.TypingScorePerChar,
			LineCompleteScore:   parameter.TypingLineCompleteScore,
			MistypeGaugePenalty: parameter.TypingMistypeGaugePenalty,
			MistypeScorePenalty: parameter.TypingMistypeScorePenalty,
			FlashDuration:       parameter.TypingFlashDuration,
			Promotion: Ranges{
				{Min: parameter.TypingEasyComboMin, Max: parameter.TypingEasyComboMax},
				{Min: parameter.TypingMediumComboMin, Max: parameter.TypingMediumComboMax},
			},
		},
		Tracing: TracingConfig{
			MinPointDistance:     parameter.TracingMinPointDistance,
			AccuracyThreshold:    parameter.TracingAccuracyThreshold,
			OffPathPenalty:       parameter.TracingOffPathPenalty,
			AccuracyGaugeBonus:   parameter.TracingAccuracyGaugeBonus,
			ComboGaugeStep:       parameter.TracingComboGaugeStep,
			ComboScoreMultiplier: parameter.TracingComboScoreMultiplier,
			BaseScore:            parameter.TracingBaseScore,
			MinDrawTime:          parameter.TracingMinDrawTime,
			MinDrawLength:        parameter.TracingMinDrawLength,
			DisplayHold:          parameter.TracingDisplayHold,
			ShapesForPromotion:   parameter.TracingShapesForPromotion,
			Promotion: Ranges{
				{Min: parameter.TracingEasyAccuracyMin, Max: parameter.TracingEasyAccuracyMax},
				{Min: parameter.TracingMediumAccuracyMin, Max: parameter.TracingMediumAccuracyMax},
			},
		},
		Engine: EngineConfig{
			TickInterval: parameter.FrameUpdateInterval,
			MaxTickDelta: parameter.MaxTickDelta,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Content: ContentConfig{
			MaxLineLength: parameter.MaxLineLength,
		},
	}
}

// Load overlays the YAML file at path on the defaults
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML, used by -dump-config
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
