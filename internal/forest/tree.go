package forest

import (
	"math"
	"math/rand/v2"
)

// GenerateTree builds one tree at position: a trunk record plus a leaf cloud
// sampled inside the crown volume sitting on top of the trunk.
//
// The leaf count follows the leaf area index so that total leaf silhouette
// area approximates LAI times the crown footprint:
//
//	n = floor(lai * pi*crownRadius^2 / (pi*leafRadius^2))
//
// Parameters are validated up front; an invalid bundle returns the error
// before any leaf is sampled, never a partial tree.
func GenerateTree(rng *rand.Rand, params TreeParams, position Vec3) (Tree, error) {
	if err := params.Validate(); err != nil {
		return Tree{}, err
	}

	trunk := Trunk{
		Base:   position,
		Height: params.TrunkHeight,
		Radius: params.TrunkRadius,
	}
	crownBaseZ := position.Z + params.TrunkHeight

	crownArea := math.Pi * params.CrownRadius * params.CrownRadius
	leafArea := math.Pi * params.LeafRadius * params.LeafRadius
	nLeaves := int(params.LAI * crownArea / leafArea)

	leaves := make([]Leaf, 0, nLeaves)
	for i := 0; i < nLeaves; i++ {
		local, err := SamplePointInCrown(rng, params.CrownShape, params.CrownHeight, params.CrownRadius)
		if err != nil {
			return Tree{}, err
		}
		normal, err := SampleLeafNormal(rng, params.LeafAngles)
		if err != nil {
			return Tree{}, err
		}
		leaves = append(leaves, Leaf{
			Center: Vec3{
				X: position.X + local.X,
				Y: position.Y + local.Y,
				Z: crownBaseZ + local.Z,
			},
			Radius: params.LeafRadius,
			Normal: normal,
		})
	}

	return Tree{Trunk: trunk, Leaves: leaves}, nil
}
