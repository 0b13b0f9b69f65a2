package forest

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// ErrInvalidParameter marks unsupported enum values and mis-sized per-tree
// parameter lists. There is no defaulting: the error names the field and the
// offending value instead of silently substituting a branch.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrSamplingBudget marks a rejection sampler that exhausted its attempt cap.
// Only reachable with degenerate crown dimensions.
var ErrSamplingBudget = errors.New("sampling attempt budget exhausted")

// CrownShape selects the crown volume envelope leaves are sampled in.
type CrownShape string

const (
	CrownSphere CrownShape = "sphere"
	// CrownSphereUpper is a sphere without its lower hemisphere, so the
	// crown occupies only z >= 0.
	CrownSphereUpper CrownShape = "sphere_w_LH"
	CrownCylinder    CrownShape = "cylinder"
	CrownCone        CrownShape = "cone"
)

var crownShapeValues = []string{
	string(CrownSphere),
	string(CrownSphereUpper),
	string(CrownCylinder),
	string(CrownCone),
}

// ParseCrownShape validates external input (config files, flags) against the
// supported crown shapes.
func ParseCrownShape(value string) (CrownShape, error) {
	switch CrownShape(value) {
	case CrownSphere, CrownSphereUpper, CrownCylinder, CrownCone:
		return CrownShape(value), nil
	}
	return "", invalidEnum("crown_shape", value, crownShapeValues)
}

// LeafAngle selects the leaf angle distribution used for leaf normals.
type LeafAngle string

const (
	LeafUniform   LeafAngle = "uniform"
	LeafSpherical LeafAngle = "spherical"
	// LeafPlanophile keeps leaves horizontal: every normal is +z.
	LeafPlanophile LeafAngle = "planophile"
	// LeafErectophile keeps leaves vertical: every normal is +x.
	LeafErectophile LeafAngle = "erectophile"
)

var leafAngleValues = []string{
	string(LeafUniform),
	string(LeafSpherical),
	string(LeafPlanophile),
	string(LeafErectophile),
}

// ParseLeafAngle validates external input against the supported leaf angle
// distributions.
func ParseLeafAngle(value string) (LeafAngle, error) {
	switch LeafAngle(value) {
	case LeafUniform, LeafSpherical, LeafPlanophile, LeafErectophile:
		return LeafAngle(value), nil
	}
	return "", invalidEnum("leaf_angle_distribution", value, leafAngleValues)
}

// Placement selects the stand placement strategy.
type Placement string

const (
	PlacementUniform Placement = "uniform"
	PlacementRandom  Placement = "random"
)

var placementValues = []string{
	string(PlacementUniform),
	string(PlacementRandom),
}

// ParsePlacement validates external input against the supported placement
// strategies.
func ParsePlacement(value string) (Placement, error) {
	switch Placement(value) {
	case PlacementUniform, PlacementRandom:
		return Placement(value), nil
	}
	return "", invalidEnum("placement", value, placementValues)
}

func invalidEnum(field, value string, known []string) error {
	if hint := closestMatch(value, known); hint != "" {
		return fmt.Errorf("%w: %s %q (did you mean %q?)", ErrInvalidParameter, field, value, hint)
	}
	return fmt.Errorf("%w: %s %q", ErrInvalidParameter, field, value)
}

func closestMatch(value string, known []string) string {
	best := ""
	bestDist := 0
	for _, cand := range known {
		dist := levenshtein.ComputeDistance(value, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Trunk is the stem of a tree, reported by its base point.
type Trunk struct {
	Base   Vec3    `json:"base" yaml:"base"`
	Height float64 `json:"height" yaml:"height"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Leaf is one leaf disc: a world-space center, a radius and a unit normal.
type Leaf struct {
	Center Vec3    `json:"center" yaml:"center"`
	Radius float64 `json:"radius" yaml:"radius"`
	Normal Vec3    `json:"normal" yaml:"normal"`
}

// Tree is a trunk plus its leaf cloud. Leaf order is insertion order and
// carries no meaning.
type Tree struct {
	Trunk  Trunk  `json:"trunk" yaml:"trunk"`
	Leaves []Leaf `json:"leaves" yaml:"leaves"`
}

// Stand is the full collection of trees on one plot, in placement order.
type Stand []Tree

// TreeParams bundles the per-tree generation inputs.
type TreeParams struct {
	TrunkHeight float64    `json:"trunk_height" yaml:"trunk_height"`
	TrunkRadius float64    `json:"trunk_radius" yaml:"trunk_radius"`
	CrownShape  CrownShape `json:"crown_shape" yaml:"crown_shape"`
	CrownHeight float64    `json:"crown_height" yaml:"crown_height"`
	CrownRadius float64    `json:"crown_radius" yaml:"crown_radius"`
	LAI         float64    `json:"lai" yaml:"lai"`
	LeafRadius  float64    `json:"leaf_radius" yaml:"leaf_radius"`
	LeafAngles  LeafAngle  `json:"leaf_angle_distribution" yaml:"leaf_angle_distribution"`
}

// Validate rejects unsupported enum values and non-positive dimensions
// before any sampling happens, so a failed tree never returns partially
// built.
func (p TreeParams) Validate() error {
	if _, err := ParseCrownShape(string(p.CrownShape)); err != nil {
		return err
	}
	if _, err := ParseLeafAngle(string(p.LeafAngles)); err != nil {
		return err
	}
	if p.CrownHeight <= 0 {
		return fmt.Errorf("%w: crown_height must be positive (got %v)", ErrInvalidParameter, p.CrownHeight)
	}
	if p.CrownRadius <= 0 {
		return fmt.Errorf("%w: crown_radius must be positive (got %v)", ErrInvalidParameter, p.CrownRadius)
	}
	if p.LeafRadius <= 0 {
		return fmt.Errorf("%w: leaf_radius must be positive (got %v)", ErrInvalidParameter, p.LeafRadius)
	}
	if p.LAI < 0 {
		return fmt.Errorf("%w: lai must be non-negative (got %v)", ErrInvalidParameter, p.LAI)
	}
	return nil
}
