package ccv

// Bucket is a single color's coherence pair: α is the number of pixels in
// "large" (coherent) same-color connected components, β the number in
// "small" (incoherent) ones.
type Bucket struct {
	Alpha uint64
	Beta  uint64
}

// CCV is a per-channel Color Coherence Vector: one Bucket per color bin
// in [0, K). Every bin in [0, K) is always present, materialized as the
// zero Bucket if no pixel landed in it.
type CCV []Bucket

// assemble folds a component list into a K-bucket CCV using the coherence
// threshold tau: a component's size is added to its color's Alpha if
// size >= tau, otherwise to Beta. Every bin in [0, k) is present on
// return even if no component ever touched it.
func assemble(comps []component, k int, tau int) CCV {
	ccv := make(CCV, k)
	for _, c := range comps {
		b := &ccv[c.color]
		if c.size >= tau {
			b.Alpha += uint64(c.size)
		} else {
			b.Beta += uint64(c.size)
		}
	}
	return ccv
}
