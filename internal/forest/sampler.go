package forest

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// sphereAttemptCap bounds the sphere rejection loop. Acceptance probability
// for a sphere inside its bounding cube is about 52%, so the cap is only
// reachable on degenerate inputs.
const sphereAttemptCap = 10000

// SampleLeafNormal draws one unit normal from the given leaf angle
// distribution. The uniform and spherical variants are isotropic on the unit
// sphere; planophile and erectophile are fixed axes.
func SampleLeafNormal(rng *rand.Rand, dist LeafAngle) (Vec3, error) {
	switch dist {
	case LeafUniform, LeafSpherical:
		// Uniform over the sphere surface: cos(theta) drawn uniformly,
		// not theta, to avoid pole bias.
		phi := rng.Float64() * 2 * math.Pi
		cosTheta := rng.Float64()*2 - 1
		sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
		return Vec3{sinTheta * math.Cos(phi), sinTheta * math.Sin(phi), cosTheta}, nil
	case LeafPlanophile:
		return Vec3{0, 0, 1}, nil
	case LeafErectophile:
		return Vec3{1, 0, 0}, nil
	}
	return Vec3{}, invalidEnum("leaf_angle_distribution", string(dist), leafAngleValues)
}

// SamplePointInCrown draws one point uniformly inside the crown volume, in
// crown-local coordinates (origin at the crown base center). height and
// radius must be positive; both are divided by.
func SamplePointInCrown(rng *rand.Rand, shape CrownShape, height, radius float64) (Vec3, error) {
	if height <= 0 || radius <= 0 {
		return Vec3{}, fmt.Errorf("%w: crown dimensions must be positive (height=%v, radius=%v)",
			ErrInvalidParameter, height, radius)
	}

	switch shape {
	case CrownSphere:
		return sampleSphere(rng, height, radius, false)
	case CrownSphereUpper:
		return sampleSphere(rng, height, radius, true)
	case CrownCylinder:
		// r = R*sqrt(U) keeps area density uniform across the disc.
		r := radius * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		z := rng.Float64() * height
		return Vec3{r * math.Cos(theta), r * math.Sin(theta), z}, nil
	case CrownCone:
		// Height first, then the disc radius tapers with it.
		z := rng.Float64() * height
		rMax := radius * (1 - z/height)
		r := rMax * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		return Vec3{r * math.Cos(theta), r * math.Sin(theta), z}, nil
	}
	return Vec3{}, invalidEnum("crown_shape", string(shape), crownShapeValues)
}

// sampleSphere rejection-samples the bounding cube until the point falls
// inside the sphere, then rescales z by height/radius so the sphere becomes
// an ellipsoid spanning the full crown height. upperOnly folds z into the
// upper hemisphere first.
func sampleSphere(rng *rand.Rand, height, radius float64, upperOnly bool) (Vec3, error) {
	for attempt := 0; attempt < sphereAttemptCap; attempt++ {
		p := Vec3{
			uniformRange(rng, -radius, radius),
			uniformRange(rng, -radius, radius),
			uniformRange(rng, -radius, radius),
		}
		if p.Length() > radius {
			continue
		}
		if upperOnly {
			p.Z = math.Abs(p.Z)
		}
		p.Z *= height / radius
		return p, nil
	}
	return Vec3{}, fmt.Errorf("%w: sphere crown (height=%v, radius=%v)", ErrSamplingBudget, height, radius)
}

func uniformRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
