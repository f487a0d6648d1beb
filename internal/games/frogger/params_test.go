package frogger

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger/sim"
)

func TestParamsFromDefaultConfig(t *testing.T) {
	got := ParamsFromConfig(config.DefaultFroggerConfig())
	if !reflect.DeepEqual(got, sim.DefaultParams()) {
		t.Errorf("ParamsFromConfig(default) = %+v\nexpected %+v", got, sim.DefaultParams())
	}
}

func TestParamsFromConfigCopiesSlices(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	p := ParamsFromConfig(cfg)
	cfg.Obstacles.Lanes[0] = 999

	if p.Lanes[0] != 62 {
		t.Errorf("params share lane storage with config: %v", p.Lanes)
	}
}

func TestParamsFromConfigPolicy(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	cfg.Rules.MultiHit = config.MultiHitOnce

	if got := ParamsFromConfig(cfg).MultiHit; got != sim.MultiHitOnce {
		t.Errorf("MultiHit = %q, expected %q", got, sim.MultiHitOnce)
	}
}
