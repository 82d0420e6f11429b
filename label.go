package ccv

import (
	"fmt"

	"github.com/krinnewitz/ccv/dsu"
)

// LabelPlane is a W×H grid of connected-component labels. Labels are drawn
// from [1, L] where L is LabelPlane.Components; 0 never appears.
type LabelPlane struct {
	W, H       int
	Components int
	lab        []uint16
}

// At returns the label at (x, y).
func (l LabelPlane) At(x, y int) uint16 {
	return l.lab[y*l.W+x]
}

// label performs two-pass 4-neighborhood connected-component labeling of a
// quantized plane, resolving label equivalences with a disjoint-set
// forest (dsu.Forest).
//
// First pass: scanning top-to-bottom, left-to-right, a pixel copies its
// left neighbor's provisional label if they share a quantized color, its
// top neighbor's if not but those match, the minimum of the two (unioning
// them) if both match, or mints a new provisional label if neither does.
//
// Second pass: every pixel's provisional label is replaced by its
// disjoint-set root, and roots are then compacted to consecutive ids
// [1, L] in first-encounter (row-major) order — this keeps the labels
// drawn from a tight [1, L] range rather than merely "some canonical but
// possibly sparse integer", and gives the label-overflow check in the
// next step a simple L > 65535 test.
//
// The provisional label counter is tracked as a native int for the
// duration of both passes (widened relative to the final label type) so
// that a pre-canonicalization run of many same-colored singletons cannot
// silently wrap; only the final, compacted root count is checked against
// the 16-bit limit and only then is the label image narrowed to uint16.
//
// label recovers allocation panics raised by its own make calls (for
// instance "makeslice: len out of range", which a W*H overflowing int on
// the host platform would trigger) and reports them as
// *AllocationFailure instead of crashing the caller.
func label(q Plane) (lp LabelPlane, err error) {
	defer func() {
		if r := recover(); r != nil {
			lp = LabelPlane{}
			err = &AllocationFailure{Cause: fmt.Errorf("%v", r)}
		}
	}()

	w, h := q.W, q.H
	if w == 0 || h == 0 {
		return LabelPlane{W: w, H: h}, nil
	}

	provisional := make([]int, w*h)
	nextLabel := 0

	idx := func(x, y int) int { return y*w + x }

	forest := dsu.New(w * h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case y == 0 && x == 0:
				nextLabel++
				provisional[idx(x, y)] = nextLabel
			case y == 0:
				if q.At(x, y) == q.At(x-1, y) {
					provisional[idx(x, y)] = provisional[idx(x-1, y)]
				} else {
					nextLabel++
					provisional[idx(x, y)] = nextLabel
				}
			case x == 0:
				if q.At(x, y) == q.At(x, y-1) {
					provisional[idx(x, y)] = provisional[idx(x, y-1)]
				} else {
					nextLabel++
					provisional[idx(x, y)] = nextLabel
				}
			default:
				leftLabel := provisional[idx(x-1, y)]
				topLabel := provisional[idx(x, y-1)]
				leftEq := q.At(x, y) == q.At(x-1, y)
				topEq := q.At(x, y) == q.At(x, y-1)
				switch {
				case leftEq && topEq:
					min := leftLabel
					if topLabel < min {
						min = topLabel
					}
					provisional[idx(x, y)] = min
					if leftLabel != topLabel {
						forest.Union(leftLabel, topLabel)
					}
				case leftEq:
					provisional[idx(x, y)] = leftLabel
				case topEq:
					provisional[idx(x, y)] = topLabel
				default:
					nextLabel++
					provisional[idx(x, y)] = nextLabel
				}
			}
		}
	}

	// Second pass: canonicalize, then compact roots to [1, L] in
	// first-encounter order.
	compact := make(map[int]int)
	compacted := make([]int, w*h)
	nextCompact := 0
	for i, p := range provisional {
		root := forest.Find(p)
		id, ok := compact[root]
		if !ok {
			nextCompact++
			id = nextCompact
			compact[root] = id
		}
		compacted[i] = id
	}

	if nextCompact > 65535 {
		return LabelPlane{}, &LabelOverflow{Count: nextCompact}
	}

	lab := make([]uint16, w*h)
	for i, id := range compacted {
		lab[i] = uint16(id)
	}

	return LabelPlane{W: w, H: h, Components: nextCompact, lab: lab}, nil
}
