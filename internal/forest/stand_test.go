package forest

import (
	"errors"
	"math"
	"testing"
)

func sharedConfig(n int, placement Placement) StandConfig {
	params := baseParams()
	return StandConfig{
		PlotWidth:  10.0,
		PlotLength: 10.0,
		Trees:      n,
		Placement:  placement,
		Seed:       1,
		Shared:     &params,
	}
}

func TestGenerateStandUniformCount(t *testing.T) {
	result, err := GenerateStand(sharedConfig(10, PlacementUniform))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Stand) != 10 {
		t.Fatalf("stand has %d trees, want 10", len(result.Stand))
	}
	if !result.Complete() {
		t.Fatalf("uniform placement reported shortfall: placed %d of %d", result.Placed, result.Requested)
	}
}

func TestGenerateStandUniformWithinBounds(t *testing.T) {
	cfg := sharedConfig(6, PlacementUniform)
	cfg.PlotWidth = 8.0
	cfg.PlotLength = 6.0

	result, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tree := range result.Stand {
		base := tree.Trunk.Base
		if base.X < 0 || base.X > cfg.PlotWidth || base.Y < 0 || base.Y > cfg.PlotLength {
			t.Fatalf("tree %d base %v outside plot %vx%v", i, base, cfg.PlotWidth, cfg.PlotLength)
		}
		if base.Z != 0 {
			t.Fatalf("tree %d base z = %v, want 0", i, base.Z)
		}
	}
}

func TestGenerateStandUniformDeterministicPositions(t *testing.T) {
	a, err := GenerateStand(sharedConfig(7, PlacementUniform))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateStand(sharedConfig(7, PlacementUniform))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a.Stand {
		if a.Stand[i].Trunk.Base != b.Stand[i].Trunk.Base {
			t.Fatalf("tree %d base differs between runs: %v != %v",
				i, a.Stand[i].Trunk.Base, b.Stand[i].Trunk.Base)
		}
	}
}

func TestGenerateStandRandomMinSpacing(t *testing.T) {
	cfg := sharedConfig(10, PlacementRandom)
	cfg.MinSpacing = 1.5

	result, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < len(result.Stand); i++ {
		for j := i + 1; j < len(result.Stand); j++ {
			a := result.Stand[i].Trunk.Base
			b := result.Stand[j].Trunk.Base
			if d := math.Hypot(a.X-b.X, a.Y-b.Y); d < cfg.MinSpacing {
				t.Fatalf("trees %d and %d are %v apart, want >= %v", i, j, d, cfg.MinSpacing)
			}
		}
	}
}

func TestGenerateStandRandomWithinBounds(t *testing.T) {
	cfg := sharedConfig(15, PlacementRandom)

	result, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tree := range result.Stand {
		base := tree.Trunk.Base
		if base.X < 0 || base.X > cfg.PlotWidth || base.Y < 0 || base.Y > cfg.PlotLength {
			t.Fatalf("tree %d base %v outside plot", i, base)
		}
		if base.Z != 0 {
			t.Fatalf("tree %d base z = %v, want 0", i, base.Z)
		}
	}
}

func TestGenerateStandRandomInfeasibleSpacingIsPartial(t *testing.T) {
	cfg := sharedConfig(50, PlacementRandom)
	cfg.PlotWidth = 4.0
	cfg.PlotLength = 4.0
	cfg.MinSpacing = 3.0

	result, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("infeasible spacing must not error, got %v", err)
	}
	if result.Complete() {
		t.Fatalf("expected a shortfall: 50 trees at 3.0 spacing cannot fit a 4x4 plot")
	}
	if result.Placed != len(result.Stand) {
		t.Fatalf("Placed = %d but stand holds %d trees", result.Placed, len(result.Stand))
	}
	if result.Placed == 0 {
		t.Fatalf("expected at least one placed tree")
	}
}

func TestGenerateStandRandomDeterministicForSeed(t *testing.T) {
	cfg := sharedConfig(8, PlacementRandom)
	cfg.Seed = 33

	a, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Stand) != len(b.Stand) {
		t.Fatalf("stand sizes differ for equal seed: %d != %d", len(a.Stand), len(b.Stand))
	}
	for i := range a.Stand {
		if a.Stand[i].Trunk.Base != b.Stand[i].Trunk.Base {
			t.Fatalf("tree %d base differs for equal seed", i)
		}
	}

	cfg.Seed = 34
	c, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Stand) == len(a.Stand) && c.Stand[0].Trunk.Base == a.Stand[0].Trunk.Base {
		t.Fatalf("expected a different layout for a different seed")
	}
}

func TestGenerateStandPerTreeParams(t *testing.T) {
	first := baseParams()
	first.TrunkHeight = 4.0
	second := baseParams()
	second.TrunkHeight = 6.0
	second.CrownShape = CrownCone

	cfg := StandConfig{
		PlotWidth:  5.0,
		PlotLength: 5.0,
		Trees:      2,
		Placement:  PlacementUniform,
		Seed:       1,
		PerTree:    []TreeParams{first, second},
	}

	result, err := GenerateStand(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Stand[0].Trunk.Height; got != 4.0 {
		t.Fatalf("tree 0 trunk height = %v, want 4", got)
	}
	if got := result.Stand[1].Trunk.Height; got != 6.0 {
		t.Fatalf("tree 1 trunk height = %v, want 6", got)
	}
}

func TestGenerateStandPerTreeLengthMismatch(t *testing.T) {
	cfg := sharedConfig(3, PlacementUniform)
	cfg.Shared = nil
	cfg.PerTree = []TreeParams{baseParams()}

	_, err := GenerateStand(cfg)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for length mismatch, got %v", err)
	}
}

func TestGenerateStandMissingParams(t *testing.T) {
	cfg := sharedConfig(3, PlacementUniform)
	cfg.Shared = nil

	_, err := GenerateStand(cfg)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for missing params, got %v", err)
	}
}

func TestGenerateStandUnknownPlacement(t *testing.T) {
	cfg := sharedConfig(5, Placement("hexagonal"))

	_, err := GenerateStand(cfg)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for unknown placement, got %v", err)
	}
}

func TestGenerateStandInvalidTreeParamsPropagate(t *testing.T) {
	params := baseParams()
	params.CrownShape = CrownShape("pyramid")
	cfg := sharedConfig(3, PlacementUniform)
	cfg.Shared = &params

	_, err := GenerateStand(cfg)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected sampler error to propagate unchanged, got %v", err)
	}
}
