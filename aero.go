package main

// stallTaperDeg is the width of the ramp past each critical angle over
// which the lift coefficient falls off to zero.
const stallTaperDeg = 1.0

// LiftCoefficient returns the lift coefficient at the given angle of
// attack in degrees. The curve is piecewise linear: from the zero-AoA
// baseline it ramps linearly toward each critical bound's coefficient,
// then tapers to zero within stallTaperDeg past the bound. Continuous
// everywhere, kinked at the bounds.
func LiftCoefficient(aoaDeg float64, p *AeroProfile) float64 {
	low := p.CritLow
	high := p.CritHigh
	switch {
	case aoaDeg < low.AngleDeg-stallTaperDeg:
		return 0
	case aoaDeg < low.AngleDeg:
		return low.Coef * (aoaDeg - (low.AngleDeg - stallTaperDeg)) / stallTaperDeg
	case aoaDeg < 0:
		return p.LiftCoef0 - (p.LiftCoef0-low.Coef)*(aoaDeg/low.AngleDeg)
	case aoaDeg < high.AngleDeg:
		return p.LiftCoef0 + (high.Coef-p.LiftCoef0)*(aoaDeg/high.AngleDeg)
	case aoaDeg < high.AngleDeg+stallTaperDeg:
		return high.Coef * (high.AngleDeg + stallTaperDeg - aoaDeg) / stallTaperDeg
	default:
		return 0
	}
}

// DragCoefficient returns the drag coefficient at the given angle of
// attack: a parabola in AoA with its minimum, the zero-AoA baseline,
// at zero.
func DragCoefficient(aoaDeg float64, p *AeroProfile) float64 {
	return aoaDeg*aoaDeg/40.0 + p.DragCoef0
}

// ComputeForces returns the lift and drag force magnitudes for the
// given angle of attack (degrees) and airspeed. Pure and deterministic:
// identical inputs always produce identical outputs. Dependence on
// airspeed is quadratic; that is part of the physical model, not
// configuration.
func ComputeForces(aoaDeg, airspeed float64, p *AeroProfile) (lift, drag float64) {
	v2 := airspeed * airspeed
	lift = p.LiftConst * LiftCoefficient(aoaDeg, p) * v2
	drag = p.DragConst * DragCoefficient(aoaDeg, p) * v2
	return lift, drag
}
