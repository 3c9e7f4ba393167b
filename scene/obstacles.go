package scene

import (
	"log"

	"github.com/dhconnelly/rtreego"

	"maze3d"
)

// boxEntry wraps a box for R-tree storage.
type boxEntry struct {
	Box   Box
	BBox  rtreego.Rect
	Order int
}

// Bounds implements rtreego.Spatial interface
func (e *boxEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// obstacleIndex answers "which boxes cover this cell" for solid and clear
// boxes separately.
type obstacleIndex struct {
	solid *rtreego.Rtree
	clear *rtreego.Rtree
}

func newObstacleIndex(boxes []Box) *obstacleIndex {
	var solidEntries, clearEntries []*boxEntry
	for i, box := range boxes {
		bbox, err := boxRect(box)
		if err != nil {
			log.Printf("⚠️  Skipping box %q: %v\n", box.Name, err)
			continue
		}
		entry := &boxEntry{Box: box, BBox: bbox, Order: i}
		if box.Clear {
			clearEntries = append(clearEntries, entry)
		} else {
			solidEntries = append(solidEntries, entry)
		}
	}

	return &obstacleIndex{
		solid: buildTree(removeContainedBoxes(solidEntries)),
		clear: buildTree(removeContainedBoxes(clearEntries)),
	}
}

func buildTree(entries []*boxEntry) *rtreego.Rtree {
	tree := rtreego.NewTree(3, 25, 50) // 3D, min 25, max 50 entries per node
	for _, entry := range entries {
		tree.Insert(entry)
	}
	return tree
}

func (idx *obstacleIndex) solidAt(cell maze3d.Coord) bool {
	return covered(idx.solid, cell)
}

func (idx *obstacleIndex) clearAt(cell maze3d.Coord) bool {
	return covered(idx.clear, cell)
}

func covered(tree *rtreego.Rtree, cell maze3d.Coord) bool {
	if tree.Size() == 0 {
		return false
	}
	return len(tree.SearchIntersect(cellRect(cell))) > 0
}

// boxRect spans a box's cells, each cell being a unit cube centred on its
// integer coordinate.
func boxRect(box Box) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(box.Min[0]) - 0.5, float64(box.Min[1]) - 0.5, float64(box.Min[2]) - 0.5},
		[]float64{
			float64(box.Max[0]-box.Min[0]) + 1,
			float64(box.Max[1]-box.Min[1]) + 1,
			float64(box.Max[2]-box.Min[2]) + 1,
		},
	)
}

// cellRect is a small cube around a cell centre, well inside the cell so it
// never touches a neighbouring box boundary.
func cellRect(cell maze3d.Coord) rtreego.Rect {
	rect, _ := rtreego.NewRect(
		rtreego.Point{float64(cell[0]) - 0.25, float64(cell[1]) - 0.25, float64(cell[2]) - 0.25},
		[]float64{0.5, 0.5, 0.5},
	)
	return rect
}

// removeContainedBoxes drops boxes that lie entirely inside another box of
// the same kind. Of two identical boxes the earlier one is kept.
func removeContainedBoxes(entries []*boxEntry) []*boxEntry {
	if len(entries) <= 1 {
		return entries
	}

	tree := buildTree(entries)
	result := make([]*boxEntry, 0, len(entries))
	for _, entry := range entries {
		contained := false
		for _, item := range tree.SearchIntersect(entry.BBox) {
			other := item.(*boxEntry)
			if other == entry || !boxContains(other.Box, entry.Box) {
				continue
			}
			if !boxContains(entry.Box, other.Box) || other.Order < entry.Order {
				contained = true
				break
			}
		}
		if !contained {
			result = append(result, entry)
		}
	}

	if removed := len(entries) - len(result); removed > 0 {
		log.Printf("   Boxes after removing contained: %d (removed %d)\n", len(result), removed)
	}
	return result
}

// boxContains reports whether inner lies entirely inside outer.
func boxContains(outer, inner Box) bool {
	for axis := 0; axis < 3; axis++ {
		if inner.Min[axis] < outer.Min[axis] || inner.Max[axis] > outer.Max[axis] {
			return false
		}
	}
	return true
}
