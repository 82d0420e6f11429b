package ccv

import "testing"

func TestQuantizeRange(t *testing.T) {
	p := NewPlane(16, 16)
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			p.Set(x, y, uint8((x*16+y)%256))
		}
	}
	for k := 1; k <= 256; k++ {
		q := quantize(p, k)
		for y := 0; y < q.H; y++ {
			for x := 0; x < q.W; x++ {
				if v := q.At(x, y); int(v) >= k {
					t.Fatalf("quantize K=%d produced bin %d >= K", k, v)
				}
			}
		}
	}
}

func TestQuantizeIdentityAt256(t *testing.T) {
	p := planeFromRows([][]uint8{{0, 1, 128, 255}})
	q := quantize(p, 256)
	for x := 0; x < p.W; x++ {
		if q.At(x, 0) != p.At(x, 0) {
			t.Errorf("quantize K=256 changed sample at %d: %d -> %d", x, p.At(x, 0), q.At(x, 0))
		}
	}
}

func TestQuantizeCollapsesAt1(t *testing.T) {
	p := planeFromRows([][]uint8{{0, 1, 128, 255}})
	q := quantize(p, 1)
	for x := 0; x < p.W; x++ {
		if q.At(x, 0) != 0 {
			t.Errorf("quantize K=1 should map everything to bin 0, got %d at %d", q.At(x, 0), x)
		}
	}
}

func TestQuantizeBinFormula(t *testing.T) {
	p := planeFromRows([][]uint8{{200}})
	q := quantize(p, 4)
	// floor(200*4/256) = 3
	if got := q.At(0, 0); got != 3 {
		t.Errorf("quantize(200, K=4) = %d, want 3", got)
	}
}
