package postprocess

import (
	"math"

	"github.com/jinderamarak/safestage/pathing"
	"github.com/jinderamarak/safestage/position"
)

// Granulate re-samples a path so consecutive waypoints are at most one
// Stepping unit of step apart, inserting uniformly Lerp-interpolated
// intermediate poses between every original pair of waypoints.
func Granulate(path pathing.PathResult[position.SixAxis], step position.SixAxis) pathing.PathResult[position.SixAxis] {
	return path.Map(func(nodes []position.SixAxis) []position.SixAxis {
		return granulateNodes(nodes, step)
	})
}

func granulateNodes(path []position.SixAxis, step position.SixAxis) []position.SixAxis {
	var out []position.SixAxis
	for i := 0; i+1 < len(path); i++ {
		out = append(out, granulateSegment(path[i], path[i+1], step)...)
	}
	return out
}

func granulateSegment(start, end position.SixAxis, step position.SixAxis) []position.SixAxis {
	steps := start.Stepping(end, step)
	segment := make([]position.SixAxis, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if math.IsNaN(t) {
			t = 0.0
		}
		segment = append(segment, start.LerpT(end, t))
	}
	return segment
}
