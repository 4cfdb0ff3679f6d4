package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if c.Quiz.MaxRecentTypes < 1 {
		return fmt.Errorf("quiz: max_recent_types must be >= 1 (got %d)", c.Quiz.MaxRecentTypes)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server: port must be in 1..65535 (got %d)", c.Server.Port)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	return nil
}

func (p *PipelineConfig) validate() error {
	if p.MinStepDelay < 0 {
		return fmt.Errorf("min_step_delay must be >= 0 (got %s)", p.MinStepDelay)
	}
	if p.MaxStepDelay < p.MinStepDelay {
		return fmt.Errorf("max_step_delay %s is below min_step_delay %s", p.MaxStepDelay, p.MinStepDelay)
	}
	if p.MaxDurationSeconds < 0 {
		return fmt.Errorf("max_duration_seconds must be >= 0 (got %d)", p.MaxDurationSeconds)
	}
	return nil
}

// SplitList splits a comma-separated setting into trimmed, non-empty parts.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
