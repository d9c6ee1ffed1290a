// Package algo implements the robust triangle-triangle overlap test
// described by Philippe Guigue and Olivier Devillers, "Fast and Robust
// Triangle-Triangle Overlap Test using Orientation Predicates" (2003),
// following the reference C implementation the paper ships.
package algo

import "github.com/jinderamarak/safestage/maths"

const coplanarEpsilon = 1e-16

// TriTriOverlapTest3D reports whether triangle (p1, q1, r1) overlaps
// triangle (p2, q2, r2).
func TriTriOverlapTest3D(p1, q1, r1, p2, q2, r2 maths.Vector3) bool {
	v1 := p2.Sub(r2)
	v2 := q2.Sub(r2)
	n2 := v1.Cross(v2)

	dp1 := snapZero(p1.Sub(r2).Dot(n2))
	dq1 := snapZero(q1.Sub(r2).Dot(n2))
	dr1 := snapZero(r1.Sub(r2).Dot(n2))

	if dp1*dq1 > 0.0 && dp1*dr1 > 0.0 {
		return false
	}

	v1 = q1.Sub(p1)
	v2 = r1.Sub(p1)
	n1 := v1.Cross(v2)

	dp2 := snapZero(p2.Sub(r1).Dot(n1))
	dq2 := snapZero(q2.Sub(r1).Dot(n1))
	dr2 := snapZero(r2.Sub(r1).Dot(n1))

	if dp2*dq2 > 0.0 && dp2*dr2 > 0.0 {
		return false
	}

	switch {
	case dp1 > 0.0:
		switch {
		case dq1 > 0.0:
			return triTri3D(r1, p1, q1, p2, r2, q2, dp2, dr2, dq2, n1)
		case dr1 > 0.0:
			return triTri3D(q1, r1, p1, p2, r2, q2, dp2, dr2, dq2, n1)
		default:
			return triTri3D(p1, q1, r1, p2, q2, r2, dp2, dq2, dr2, n1)
		}
	case dp1 < 0.0:
		switch {
		case dq1 < 0.0:
			return triTri3D(r1, p1, q1, p2, q2, r2, dp2, dq2, dr2, n1)
		case dr1 < 0.0:
			return triTri3D(q1, r1, p1, p2, q2, r2, dp2, dq2, dr2, n1)
		default:
			return triTri3D(p1, q1, r1, p2, r2, q2, dp2, dr2, dq2, n1)
		}
	default:
		switch {
		case dq1 < 0.0:
			if dr1 >= 0.0 {
				return triTri3D(q1, r1, p1, p2, r2, q2, dp2, dr2, dq2, n1)
			}
			return triTri3D(p1, q1, r1, p2, q2, r2, dp2, dq2, dr2, n1)
		case dq1 > 0.0:
			if dr1 > 0.0 {
				return triTri3D(p1, q1, r1, p2, r2, q2, dp2, dr2, dq2, n1)
			}
			return triTri3D(q1, r1, p1, p2, q2, r2, dp2, dq2, dr2, n1)
		default:
			switch {
			case dr1 > 0.0:
				return triTri3D(r1, p1, q1, p2, q2, r2, dp2, dq2, dr2, n1)
			case dr1 < 0.0:
				return triTri3D(r1, p1, q1, p2, r2, q2, dp2, dr2, dq2, n1)
			default:
				return coplanarTriTri3D(p1, q1, r1, p2, q2, r2, n1)
			}
		}
	}
}

func snapZero(v float64) float64 {
	if v < 0 {
		if -v < coplanarEpsilon {
			return 0
		}
		return v
	}
	if v < coplanarEpsilon {
		return 0
	}
	return v
}

func coplanarTriTri3D(p1, q1, r1, p2, q2, r2, normal1 maths.Vector3) bool {
	nx, ny, nz := abs(normal1.X()), abs(normal1.Y()), abs(normal1.Z())

	var p1d, q1d, r1d, p2d, q2d, r2d maths.Vector2
	switch {
	case nx > nz && nx >= ny:
		p1d, q1d, r1d = maths.NewVector2(q1.Z(), q1.Y()), maths.NewVector2(p1.Z(), p1.Y()), maths.NewVector2(r1.Z(), r1.Y())
		p2d, q2d, r2d = maths.NewVector2(q2.Z(), q2.Y()), maths.NewVector2(p2.Z(), p2.Y()), maths.NewVector2(r2.Z(), r2.Y())
	case ny > nz && ny >= nx:
		p1d, q1d, r1d = maths.NewVector2(q1.X(), q1.Z()), maths.NewVector2(p1.X(), p1.Z()), maths.NewVector2(r1.X(), r1.Z())
		p2d, q2d, r2d = maths.NewVector2(q2.X(), q2.Z()), maths.NewVector2(p2.X(), p2.Z()), maths.NewVector2(r2.X(), r2.Z())
	default:
		p1d, q1d, r1d = maths.NewVector2(p1.X(), p1.Y()), maths.NewVector2(q1.X(), q1.Y()), maths.NewVector2(r1.X(), r1.Y())
		p2d, q2d, r2d = maths.NewVector2(p2.X(), p2.Y()), maths.NewVector2(q2.X(), q2.Y()), maths.NewVector2(r2.X(), r2.Y())
	}

	return triTriOverlapTest2D(p1d, q1d, r1d, p2d, q2d, r2d)
}

func triTriOverlapTest2D(p1, q1, r1, p2, q2, r2 maths.Vector2) bool {
	if orient2D(p1, q1, r1) < 0.0 {
		if orient2D(p2, q2, r2) < 0.0 {
			return ccwTriTriIntersection2D(p1, r1, q1, p2, r2, q2)
		}
		return ccwTriTriIntersection2D(p1, r1, q1, p2, q2, r2)
	}
	if orient2D(p2, q2, r2) < 0.0 {
		return ccwTriTriIntersection2D(p1, q1, r1, p2, r2, q2)
	}
	return ccwTriTriIntersection2D(p1, q1, r1, p2, q2, r2)
}

func checkMinMax(p1, q1, r1, p2, q2, r2 maths.Vector3) bool {
	v1 := p2.Sub(q1)
	v2 := p1.Sub(q1)
	n1 := v1.Cross(v2)
	v1 = q2.Sub(q1)
	if v1.Dot(n1) > 0.0 {
		return false
	}

	v1 = p2.Sub(p1)
	v2 = r1.Sub(p1)
	n1 = v1.Cross(v2)
	v1 = r2.Sub(p1)

	return v1.Dot(n1) <= 0.0
}

func triTri3D(p1, q1, r1, p2, q2, r2 maths.Vector3, dp2, dq2, dr2 float64, n1 maths.Vector3) bool {
	switch {
	case dp2 > 0.0:
		switch {
		case dq2 > 0.0:
			return checkMinMax(p1, r1, q1, r2, p2, q2)
		case dr2 > 0.0:
			return checkMinMax(p1, r1, q1, q2, r2, p2)
		default:
			return checkMinMax(p1, q1, r1, p2, q2, r2)
		}
	case dp2 < 0.0:
		switch {
		case dq2 < 0.0:
			return checkMinMax(p1, q1, r1, r2, p2, q2)
		case dr2 < 0.0:
			return checkMinMax(p1, q1, r1, q2, r2, p2)
		default:
			return checkMinMax(p1, r1, q1, p2, q2, r2)
		}
	default:
		switch {
		case dq2 < 0.0:
			if dr2 >= 0.0 {
				return checkMinMax(p1, r1, q1, q2, r2, p2)
			}
			return checkMinMax(p1, q1, r1, p2, q2, r2)
		case dq2 > 0.0:
			if dr2 > 0.0 {
				return checkMinMax(p1, r1, q1, p2, q2, r2)
			}
			return checkMinMax(p1, q1, r1, q2, r2, p2)
		default:
			switch {
			case dr2 > 0.0:
				return checkMinMax(p1, q1, r1, r2, p2, q2)
			case dr2 < 0.0:
				return checkMinMax(p1, r1, q1, r2, p2, q2)
			default:
				return coplanarTriTri3D(p1, q1, r1, p2, q2, r2, n1)
			}
		}
	}
}

func orient2D(a, b, c maths.Vector2) float64 {
	return (a.X()-c.X())*(b.Y()-c.Y()) - (a.Y()-c.Y())*(b.X()-c.X())
}

func intersectionTestVertex(p1, q1, r1, p2, q2, r2 maths.Vector2) bool {
	if orient2D(r2, p2, q1) >= 0.0 {
		if orient2D(r2, q2, q1) <= 0.0 {
			if orient2D(p1, p2, q1) > 0.0 {
				return orient2D(p1, q2, q1) <= 0.0
			}
			if orient2D(p1, p2, r1) >= 0.0 {
				return orient2D(q1, r1, p2) >= 0.0
			}
			return false
		}
		if orient2D(p1, q2, q1) <= 0.0 {
			if orient2D(r2, q2, r1) <= 0.0 {
				return orient2D(q1, r1, q2) >= 0.0
			}
			return false
		}
		return false
	}
	if orient2D(r2, p2, r1) >= 0.0 {
		if orient2D(q1, r1, r2) >= 0.0 {
			return orient2D(p1, p2, r1) >= 0.0
		}
		if orient2D(q1, r1, q2) >= 0.0 {
			return orient2D(r2, r1, q2) >= 0.0
		}
		return false
	}
	return false
}

func intersectionTestEdge(p1, q1, r1, p2, _, r2 maths.Vector2) bool {
	if orient2D(r2, p2, q1) >= 0.0 {
		if orient2D(p1, p2, q1) >= 0.0 {
			return orient2D(p1, q1, r2) >= 0.0
		}
		if orient2D(q1, r1, p2) >= 0.0 {
			return orient2D(r1, p1, p2) >= 0.0
		}
		return false
	}
	if orient2D(r2, p2, r1) >= 0.0 {
		if orient2D(p1, p2, r1) >= 0.0 {
			if orient2D(p1, r1, r2) >= 0.0 {
				return true
			}
			return orient2D(q1, r1, r2) >= 0.0
		}
		return false
	}
	return false
}

func ccwTriTriIntersection2D(p1, q1, r1, p2, q2, r2 maths.Vector2) bool {
	if orient2D(p2, q2, p1) >= 0.0 {
		if orient2D(q2, r2, p1) >= 0.0 {
			if orient2D(r2, p2, p1) >= 0.0 {
				return true
			}
			return intersectionTestEdge(p1, q1, r1, p2, q2, r2)
		}
		if orient2D(r2, p2, p1) >= 0.0 {
			return intersectionTestEdge(p1, q1, r1, r2, p2, q2)
		}
		return intersectionTestVertex(p1, q1, r1, p2, q2, r2)
	}
	if orient2D(q2, r2, p1) >= 0.0 {
		if orient2D(r2, p2, p1) >= 0.0 {
			return intersectionTestEdge(p1, q1, r1, q2, r2, p2)
		}
		return intersectionTestVertex(p1, q1, r1, q2, r2, p2)
	}
	return intersectionTestVertex(p1, q1, r1, r2, p2, q2)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
