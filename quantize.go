package ccv

// quantize maps an 8-bit plane onto K color bins, bin = floor(sample*K/256).
// The result satisfies 0 <= Q(y,x) < K for every sample. K must already be
// validated to lie in [1, 256]; quantize itself performs no validation, it
// is an internal stage called only after Config.Validate has run.
func quantize(p Plane, k int) Plane {
	out := NewPlane(p.W, p.H)
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			bin := int(p.At(x, y)) * k / 256
			out.Set(x, y, uint8(bin))
		}
	}
	return out
}
