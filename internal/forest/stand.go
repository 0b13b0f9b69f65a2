package forest

import (
	"fmt"
	"math"
)

// placementAttemptsPerTree is the attempt budget multiplier for
// spacing-constrained random placement.
const placementAttemptsPerTree = 50

// StandConfig describes one stand generation run. Exactly one of Shared and
// PerTree must be set; PerTree must hold one bundle per requested tree,
// matched by placement order.
type StandConfig struct {
	PlotWidth  float64
	PlotLength float64
	Trees      int
	Placement  Placement
	// MinSpacing is the minimum xy distance between tree bases for random
	// placement. Zero or negative falls back to 1.0.
	MinSpacing float64
	Seed       int64
	Shared     *TreeParams
	PerTree    []TreeParams
}

func (c StandConfig) paramsAt(index int) TreeParams {
	if c.PerTree != nil {
		return c.PerTree[index]
	}
	return *c.Shared
}

func (c StandConfig) validate() error {
	if c.PlotWidth <= 0 || c.PlotLength <= 0 {
		return fmt.Errorf("%w: plot dimensions must be positive (width=%v, length=%v)",
			ErrInvalidParameter, c.PlotWidth, c.PlotLength)
	}
	if c.Trees < 0 {
		return fmt.Errorf("%w: n_trees must be non-negative (got %d)", ErrInvalidParameter, c.Trees)
	}
	if c.Shared == nil && c.PerTree == nil {
		return fmt.Errorf("%w: tree parameters are required", ErrInvalidParameter)
	}
	if c.PerTree != nil && len(c.PerTree) != c.Trees {
		return fmt.Errorf("%w: per-tree parameter list has %d entries for %d trees",
			ErrInvalidParameter, len(c.PerTree), c.Trees)
	}
	return nil
}

// StandResult carries the generated stand plus the placement outcome. For
// random placement Placed may fall short of Requested when the spacing
// constraint cannot be satisfied within the attempt budget; that is expected
// behavior, not an error, and callers decide whether to warn.
type StandResult struct {
	Stand     Stand
	Requested int
	Placed    int
}

// Complete reports whether every requested tree was placed.
func (r StandResult) Complete() bool {
	return r.Placed == r.Requested
}

// GenerateStand places tree base positions on the plot per the configured
// strategy and generates one tree per position. Trees are returned in
// placement order: grid scan order for uniform, acceptance order for random.
func GenerateStand(cfg StandConfig) (StandResult, error) {
	if err := cfg.validate(); err != nil {
		return StandResult{}, err
	}

	switch cfg.Placement {
	case PlacementUniform:
		return generateUniform(cfg)
	case PlacementRandom:
		return generateRandom(cfg)
	}
	return StandResult{}, invalidEnum("placement", string(cfg.Placement), placementValues)
}

// generateUniform lays trees out on a grid as close to square cells as the
// plot aspect allows, one tree per cell center, column-major scan. Fully
// deterministic placement; only the leaves draw randomness.
func generateUniform(cfg StandConfig) (StandResult, error) {
	stand := make(Stand, 0, cfg.Trees)
	if cfg.Trees == 0 {
		return StandResult{Stand: stand}, nil
	}

	nCols := int(math.Ceil(math.Sqrt(float64(cfg.Trees) * cfg.PlotWidth / cfg.PlotLength)))
	nRows := int(math.Ceil(float64(cfg.Trees) / float64(nCols)))
	xSpacing := cfg.PlotWidth / float64(nCols)
	ySpacing := cfg.PlotLength / float64(nRows)

	// The grid may hold more cells than trees; excess cells are skipped.
	for i := 0; i < nCols && len(stand) < cfg.Trees; i++ {
		for j := 0; j < nRows && len(stand) < cfg.Trees; j++ {
			index := len(stand)
			position := Vec3{
				X: (float64(i) + 0.5) * xSpacing,
				Y: (float64(j) + 0.5) * ySpacing,
			}
			tree, err := GenerateTree(TreeRNG(cfg.Seed, index), cfg.paramsAt(index), position)
			if err != nil {
				return StandResult{}, err
			}
			stand = append(stand, tree)
		}
	}
	return StandResult{Stand: stand, Requested: cfg.Trees, Placed: len(stand)}, nil
}

// generateRandom draws candidate positions uniformly over the plot and
// accepts each one whose xy distance to every accepted position is at least
// MinSpacing. The attempt budget makes infeasible spacing terminate with a
// partial stand instead of looping forever.
func generateRandom(cfg StandConfig) (StandResult, error) {
	minSpacing := cfg.MinSpacing
	if minSpacing <= 0 {
		minSpacing = 1.0
	}

	rng := SeededRNG(cfg.Seed)
	maxAttempts := cfg.Trees * placementAttemptsPerTree
	positions := make([]Vec3, 0, cfg.Trees)
	stand := make(Stand, 0, cfg.Trees)

	for attempts := 0; attempts < maxAttempts && len(stand) < cfg.Trees; attempts++ {
		candidate := Vec3{
			X: rng.Float64() * cfg.PlotWidth,
			Y: rng.Float64() * cfg.PlotLength,
		}
		if !clearOf(positions, candidate, minSpacing) {
			continue
		}
		index := len(stand)
		tree, err := GenerateTree(TreeRNG(cfg.Seed, index), cfg.paramsAt(index), candidate)
		if err != nil {
			return StandResult{}, err
		}
		positions = append(positions, candidate)
		stand = append(stand, tree)
	}
	return StandResult{Stand: stand, Requested: cfg.Trees, Placed: len(stand)}, nil
}

func clearOf(positions []Vec3, candidate Vec3, minSpacing float64) bool {
	for _, p := range positions {
		if math.Hypot(candidate.X-p.X, candidate.Y-p.Y) < minSpacing {
			return false
		}
	}
	return true
}
