package world

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rules is the YAML-serializable tuning of a game.
type Rules struct {
	InitialEnergy      int     `yaml:"initial_energy"`
	InitialTorpedoes   int     `yaml:"initial_torpedoes"`
	AvgHostileEnergy   int     `yaml:"avg_hostile_energy"`
	StardateMin        int     `yaml:"stardate_min"`
	StardateMax        int     `yaml:"stardate_max"`
	TimeLimitMin       int     `yaml:"time_limit_min"`
	TimeLimitMax       int     `yaml:"time_limit_max"`
	PlacementAttempts  int     `yaml:"placement_attempts"`
	TorpedoRange       int     `yaml:"torpedo_range"`
	DamagedWarpCeiling float64 `yaml:"damaged_warp_ceiling"`
}

// DefaultRules returns the classic game tuning.
func DefaultRules() Rules {
	return Rules{
		InitialEnergy:      3000,
		InitialTorpedoes:   10,
		AvgHostileEnergy:   200,
		StardateMin:        2000,
		StardateMax:        4000,
		TimeLimitMin:       25,
		TimeLimitMax:       35,
		PlacementAttempts:  100,
		TorpedoRange:       20,
		DamagedWarpCeiling: 0.2,
	}
}

// LoadRules parses Rules from YAML bytes. Fields missing from the document
// keep their DefaultRules value.
func LoadRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	if r.InitialEnergy <= 0 {
		return fmt.Errorf("initial_energy must be positive, got %d", r.InitialEnergy)
	}
	if r.InitialTorpedoes < 0 {
		return fmt.Errorf("initial_torpedoes must not be negative, got %d", r.InitialTorpedoes)
	}
	if r.AvgHostileEnergy <= 0 {
		return fmt.Errorf("avg_hostile_energy must be positive, got %d", r.AvgHostileEnergy)
	}
	if r.StardateMin > r.StardateMax {
		return fmt.Errorf("stardate range (%d) > (%d)", r.StardateMin, r.StardateMax)
	}
	if r.TimeLimitMin <= 0 || r.TimeLimitMin > r.TimeLimitMax {
		return fmt.Errorf("time limit range (%d..%d) is invalid", r.TimeLimitMin, r.TimeLimitMax)
	}
	if r.PlacementAttempts <= 0 {
		return fmt.Errorf("placement_attempts must be positive, got %d", r.PlacementAttempts)
	}
	if r.TorpedoRange <= 0 {
		return fmt.Errorf("torpedo_range must be positive, got %d", r.TorpedoRange)
	}
	if r.DamagedWarpCeiling <= 0 || r.DamagedWarpCeiling > 8 {
		return fmt.Errorf("damaged_warp_ceiling must be in (0,8], got %g", r.DamagedWarpCeiling)
	}
	return nil
}
