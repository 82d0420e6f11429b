package ccv

import "fmt"

// Distance computes the normalized L1 distance between two descriptors
// across all channels:
//
//	d(D1,D2) = Σ_ch Σ_c |α1/N1 - α2/N2| + |β1/N1 - β2/N2|
//
// Both descriptors must share the same K and channel count; a mismatch
// is a caller error reported as *ComparisonMismatch. A missing bucket on
// d2 (which should never happen, since BuildDescriptor always materializes
// every bin) is treated as the zero Bucket, defensively.
func Distance(d1, d2 *Descriptor) (float64, error) {
	if d1.K != d2.K {
		return 0, &ComparisonMismatch{Reason: fmt.Sprintf("K mismatch: %d vs %d", d1.K, d2.K)}
	}
	if len(d1.Channels) != len(d2.Channels) {
		return 0, &ComparisonMismatch{Reason: fmt.Sprintf("channel count mismatch: %d vs %d", len(d1.Channels), len(d2.Channels))}
	}
	if d1.N == 0 || d2.N == 0 {
		return 0, &ComparisonMismatch{Reason: "descriptor has zero pixel count"}
	}

	n1, n2 := float64(d1.N), float64(d2.N)
	var total float64
	for ch := range d1.Channels {
		c1 := d1.Channels[ch]
		c2 := d2.Channels[ch]
		for c := 0; c < d1.K; c++ {
			var b2 Bucket
			if c < len(c2) {
				b2 = c2[c]
			}
			b1 := c1[c]
			total += abs(float64(b1.Alpha)/n1-float64(b2.Alpha)/n2) +
				abs(float64(b1.Beta)/n1-float64(b2.Beta)/n2)
		}
	}
	return total, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
