package scene

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// Footprint is a polygon on the x-y plane extruded over the inclusive z
// range [ZMin, ZMax]. Cell (x, y, z) is covered when the point (x, y) lies
// in the polygon; points on the boundary count as inside.
type Footprint struct {
	Name       string
	Polygon    orb.Polygon
	ZMin, ZMax int
}

// NewFootprint builds a single-ring footprint, closing the ring if needed.
func NewFootprint(name string, vertices []orb.Point, zMin, zMax int) Footprint {
	ring := make(orb.Ring, len(vertices), len(vertices)+1)
	copy(ring, vertices)
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return Footprint{
		Name:    name,
		Polygon: orb.Polygon{ring},
		ZMin:    zMin,
		ZMax:    zMax,
	}
}

// Simplified reduces the footprint with Douglas-Peucker. When the outer
// ring would collapse below a triangle the footprint is returned unchanged.
func (f Footprint) Simplified(tolerance float64) Footprint {
	if len(f.Polygon) == 0 || len(f.Polygon[0]) <= 4 {
		return f
	}

	simplified, ok := simplify.DouglasPeucker(tolerance).Simplify(f.Polygon.Clone()).(orb.Polygon)
	if !ok || len(simplified) == 0 || len(simplified[0]) < 4 {
		return f // Failed to simplify adequately
	}
	f.Polygon = simplified
	return f
}

// Covers reports whether the footprint blocks the column at (x, y).
func (f Footprint) Covers(x, y int) bool {
	if len(f.Polygon) == 0 || len(f.Polygon[0]) < 3 {
		return false
	}
	return planar.PolygonContains(f.Polygon, orb.Point{float64(x), float64(y)})
}

// rasterise marks every covered cell of the footprint as a wall. Only the
// columns inside the polygon's bounding box are tested.
func (f Footprint) rasterise(occupancy [][][]bool) {
	if len(f.Polygon) == 0 || len(occupancy) == 0 || len(occupancy[0]) == 0 {
		return
	}
	bound := f.Polygon.Bound()

	xMin := clamp(int(math.Ceil(bound.Min[0])), 0, len(occupancy)-1)
	xMax := clamp(int(math.Floor(bound.Max[0])), 0, len(occupancy)-1)
	yMin := clamp(int(math.Ceil(bound.Min[1])), 0, len(occupancy[0])-1)
	yMax := clamp(int(math.Floor(bound.Max[1])), 0, len(occupancy[0])-1)
	zMin := clamp(f.ZMin, 0, len(occupancy[0][0])-1)
	zMax := clamp(f.ZMax, 0, len(occupancy[0][0])-1)
	if f.ZMax < 0 || f.ZMin > len(occupancy[0][0])-1 {
		return
	}

	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			if !f.Covers(x, y) {
				continue
			}
			for z := zMin; z <= zMax; z++ {
				occupancy[x][y][z] = true
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
