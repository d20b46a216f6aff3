package config

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositive = errors.New("must be positive")
	ErrNegative    = errors.New("must not be negative")
	ErrBadRange    = errors.New("invalid range")
)

// Validate rejects values the engines cannot run with
// Zero AccuracyThreshold is allowed and means only exact traces score
func (c *Config) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s %w", name, ErrNonPositive))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s %w", name, ErrNegative))
		}
	}

	positive("gauge.max", c.Gauge.Max)
	nonNegative("gauge.drain_rate", c.Gauge.DrainRate)

	nonNegative("typing.mistype_gauge_penalty", c.Typing.MistypeGaugePenalty)
	nonNegative("typing.flash_duration", float64(c.Typing.FlashDuration))
	errs = append(errs, checkRanges("typing.promotion", c.Typing.Promotion, false)...)

	nonNegative("tracing.min_point_distance", c.Tracing.MinPointDistance)
	nonNegative("tracing.accuracy_threshold", c.Tracing.AccuracyThreshold)
	nonNegative("tracing.min_draw_time", float64(c.Tracing.MinDrawTime))
	nonNegative("tracing.min_draw_length", c.Tracing.MinDrawLength)
	nonNegative("tracing.display_hold", float64(c.Tracing.DisplayHold))
	positive("tracing.shapes_for_promotion", float64(c.Tracing.ShapesForPromotion))
	errs = append(errs, checkRanges("tracing.promotion", c.Tracing.Promotion, true)...)

	positive("engine.tick_interval", float64(c.Engine.TickInterval))
	positive("engine.max_tick_delta", float64(c.Engine.MaxTickDelta))

	positive("content.max_line_length", float64(c.Content.MaxLineLength))

	return errors.Join(errs...)
}

// checkRanges requires min <= max per tier and, for accuracy bars, bounds within [0, 1]
func checkRanges(name string, r Ranges, unit bool) []error {
	var errs []error
	for i, rg := range r {
		if rg.Min > rg.Max || rg.Min < 0 {
			errs = append(errs, fmt.Errorf("%s[%d] [%g, %g): %w", name, i, rg.Min, rg.Max, ErrBadRange))
			continue
		}
		if unit && rg.Max > 1 {
			errs = append(errs, fmt.Errorf("%s[%d] exceeds 1: %w", name, i, ErrBadRange))
		}
	}
	return errs
}
