// radius.go implements the PRM* connection radius rule, fixing d=2,
// zeta_d=pi and taking the free-space measure mu_free as half the
// rectangle area.
package roadmap

import "math"

// dimensions is the configuration-space dimensionality. 3D configurations
// are out of scope, so this is a constant, not a Config field.
const dimensions = 2.0

// unitBallVolume2D is zeta_d for d=2: the area of the unit disk.
const unitBallVolume2D = math.Pi

// ConnectionRadius computes r* for the given configuration, following the
// PRM* rule:
//
//	r* = gamma * (log2 N / N)^(1/d),  gamma = (2*(1+1/d))^(1/d) * (mu_free/zeta_d)^(1/d)
//
// with d=2, zeta_d=pi and mu_free = (Width*Height)/2. The log term uses
// base 2, matching dprm.rs's max_radius (n.log(d) with d=2.0 as the base
// argument, not the dimensionality) rather than a natural log.
//
// mu_free does not account for actual obstacle coverage; this is carried
// as-is rather than refined, since refining it against the current
// obstacle set would break cross-run determinism for a fixed
// configuration.
//
// ConnectionRadius is computed once per Config and is otherwise pure.
// Complexity: O(1).
func ConnectionRadius(cfg Config) float64 {
	n := float64(cfg.NumVertices)
	invD := 1.0 / dimensions

	area := cfg.Width * cfg.Height
	muFree := area * 0.5

	gamma := math.Pow(2.0*(1.0+invD), invD) * math.Pow(muFree/unitBallVolume2D, invD)

	return gamma * math.Pow(math.Log2(n)/n, invD)
}
