package ccv

// boxBlur applies a 3×3 mean filter to p, returning a new plane of the
// same shape. Each output sample is the integer mean (rounded toward zero
// after truncating division, matching the reference's plain integer
// division) of the 3×3 neighborhood centered on it in p.
//
// Border policy: edge replication. A window that would read outside the
// plane reuses the nearest edge row/column instead of wrapping or
// reflecting. This choice is arbitrary but fixed and documented once:
// any border policy only disturbs O(W+H) border pixels, and the coarse
// quantization that follows absorbs that disturbance.
func boxBlur(p Plane) Plane {
	out := NewPlane(p.W, p.H)
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			var sum int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sum += int(p.At(clampCoord(x+dx, p.W), clampCoord(y+dy, p.H)))
				}
			}
			out.Set(x, y, uint8(sum/9))
		}
	}
	return out
}
