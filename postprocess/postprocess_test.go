package postprocess_test

import (
	"testing"

	"github.com/jinderamarak/safestage/group"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/pathing"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/postprocess"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/stretchr/testify/assert"
)

type pointMovable struct{ radius float64 }

func (m pointMovable) MoveTo(p position.SixAxis) pathing.Immovable {
	return group.NewColliderGroup(mustSphere(p.Pos.X(), p.Pos.Y(), p.Pos.Z(), m.radius))
}

func mustSphere(x, y, z, r float64) primitive.Collider {
	c, err := primitive.NewBuilder().CenterXYZ(x, y, z).Radius(r).Build()
	if err != nil {
		panic(err)
	}
	return c
}

func sa(x, y, z float64) position.SixAxis {
	return position.SixAxis{Pos: maths.NewVector3(x, y, z)}
}

func TestSmoothCollapsesCollinearWaypoints(t *testing.T) {
	path := pathing.Path([]position.SixAxis{sa(0, 0, 0), sa(1, 0, 0), sa(2, 0, 0), sa(3, 0, 0)})
	movable := pointMovable{radius: 0.1}
	immovable := group.NewColliderGroup[primitive.Collider]()

	smoothed := postprocess.Smooth(path, movable, immovable, sa(1, 1, 1))
	assert.Equal(t, []position.SixAxis{sa(0, 0, 0), sa(3, 0, 0)}, smoothed.Nodes())
}

func TestSmoothIsIdempotent(t *testing.T) {
	path := pathing.Path([]position.SixAxis{sa(0, 0, 0), sa(1, 0, 0), sa(2, 0, 0), sa(3, 0, 0)})
	movable := pointMovable{radius: 0.1}
	immovable := group.NewColliderGroup[primitive.Collider]()

	once := postprocess.Smooth(path, movable, immovable, sa(1, 1, 1))
	twice := postprocess.Smooth(once, movable, immovable, sa(1, 1, 1))
	assert.Equal(t, once.Nodes(), twice.Nodes())
}

func TestSmoothKeepsWaypointAroundObstacle(t *testing.T) {
	path := pathing.Path([]position.SixAxis{sa(0, 0, 0), sa(1, 1, 0), sa(2, 0, 0)})
	movable := pointMovable{radius: 0.1}
	immovable := group.NewColliderGroup(mustSphere(1, 0, 0, 0.5))

	smoothed := postprocess.Smooth(path, movable, immovable, sa(1, 1, 1))
	assert.Equal(t, []position.SixAxis{sa(0, 0, 0), sa(1, 1, 0), sa(2, 0, 0)}, smoothed.Nodes())
}

func TestGranulateInsertsIntermediateWaypoints(t *testing.T) {
	path := pathing.Path([]position.SixAxis{sa(0, 0, 0), sa(4, 0, 0)})

	granulated := postprocess.Granulate(path, sa(1, 1, 1))
	assert.Equal(t, []position.SixAxis{sa(0, 0, 0), sa(1, 0, 0), sa(2, 0, 0), sa(3, 0, 0), sa(4, 0, 0)}, granulated.Nodes())
}

func TestGranulatePreservesInvalidStart(t *testing.T) {
	invalid := pathing.InvalidStart(sa(0, 0, 0))
	assert.Equal(t, pathing.KindInvalidStart, postprocess.Granulate(invalid, sa(1, 1, 1)).Kind())
}
