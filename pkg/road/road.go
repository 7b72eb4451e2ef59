// Package road provides the road lookups the animation sequences project
// sprites with: the screen row of the road at a given depth, the road's
// horizontal offset at a given depth, and the camera view mode.
package road

// TableSize is the number of depth entries in each table
const TableSize = 0x200

// ViewMode is the camera position.
type ViewMode int

const (
	ViewNormal ViewMode = iota
	ViewElevated
	ViewInCar
)

// TableRoad answers road lookups from precomputed tables.
type TableRoad struct {
	roadY  [TableSize]int16
	offset [TableSize]int16
	view   ViewMode
}

// NewTableRoad copies the given tables. Shorter tables are padded with
// their last entry.
func NewTableRoad(roadY, offsets []int16) *TableRoad {
	r := &TableRoad{}
	fill(r.roadY[:], roadY)
	fill(r.offset[:], offsets)
	return r
}

// NewPerspectiveRoad builds a straight, centred road whose screen row runs
// linearly from horizon at depth 0 to bottom at the deepest entry.
func NewPerspectiveRoad(horizon, bottom int16) *TableRoad {
	r := &TableRoad{}
	span := int32(bottom) - int32(horizon)
	for i := range r.roadY {
		r.roadY[i] = horizon + int16(span*int32(i)/(TableSize-1))
	}
	return r
}

func fill(dst, src []int16) {
	var last int16
	for i := range dst {
		if i < len(src) {
			last = src[i]
		}
		dst[i] = last
	}
}

func clampIndex(i uint16) uint16 {
	if i >= TableSize {
		return TableSize - 1
	}
	return i
}

// RoadY returns the screen row of the road at priority.
func (r *TableRoad) RoadY(priority uint16) int16 {
	return r.roadY[clampIndex(priority)]
}

// RoadOffset returns the road's horizontal offset at depth.
func (r *TableRoad) RoadOffset(depth uint16) int16 {
	return r.offset[clampIndex(depth)]
}

// SetOffsets replaces the horizontal offset table.
func (r *TableRoad) SetOffsets(offsets []int16) {
	fill(r.offset[:], offsets)
}

// SetCurve bends the road: the offset grows quadratically with depth,
// reaching amount at the deepest entry.
func (r *TableRoad) SetCurve(amount int16) {
	for i := range r.offset {
		d := int64(i)
		r.offset[i] = int16(int64(amount) * d * d / ((TableSize - 1) * (TableSize - 1)))
	}
}

func (r *TableRoad) View() ViewMode {
	return r.view
}

func (r *TableRoad) SetView(v ViewMode) {
	r.view = v
}

// InCarView reports whether the camera sits inside the vehicle.
func (r *TableRoad) InCarView() bool {
	return r.view == ViewInCar
}
