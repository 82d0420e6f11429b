package ccv

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Config holds the per-invocation parameters of descriptor construction.
type Config struct {
	// K is the number of quantization bins per channel, 1 <= K <= 256.
	K int

	// Tau is the coherence threshold: the minimum component size, in
	// pixels, for its pixels to count as coherent (added to Alpha
	// instead of Beta). Must be >= 0.
	Tau int

	// Parallel, if true, runs the per-channel pipelines concurrently.
	// The channel pipelines share no mutable state, so this is always
	// safe; it only costs goroutine setup for small images, which is
	// why it defaults to false.
	Parallel bool
}

// Validate checks that cfg describes a legal descriptor configuration,
// returning a *ConfigError if not.
func (cfg Config) Validate() error {
	if cfg.K < 1 || cfg.K > 256 {
		return &ConfigError{Reason: fmt.Sprintf("K must be in [1,256], got %d", cfg.K)}
	}
	if cfg.Tau < 0 {
		return &ConfigError{Reason: fmt.Sprintf("Tau must be >= 0, got %d", cfg.Tau)}
	}
	return nil
}

// Image is a multi-channel 8-bit-per-channel pixel buffer: W, H, C plus
// interleaved channel-last raw bytes (len(Pix) == W*H*C). C must be 1 or
// 3. This is the only shape of input the core accepts; decoding an image
// file into this form is a caller concern.
type Image struct {
	W, H, C int
	Pix     []uint8
}

// Validate checks img's shape, returning a *ConfigError if it is
// zero-dimensioned, has an unsupported channel count, or its buffer
// length doesn't match W*H*C.
func (img Image) Validate() error {
	if img.W <= 0 || img.H <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("image must have positive dimensions, got %dx%d", img.W, img.H)}
	}
	if img.C != 1 && img.C != 3 {
		return &ConfigError{Reason: fmt.Sprintf("channel count must be 1 or 3, got %d", img.C)}
	}
	if len(img.Pix) != img.W*img.H*img.C {
		return &ConfigError{Reason: fmt.Sprintf("pixel buffer length %d does not match W*H*C=%d", len(img.Pix), img.W*img.H*img.C)}
	}
	return nil
}

// Descriptor is a triple (or singleton) of per-channel CCVs plus the
// pixel count they were built from. Channel ordering is the native order
// of the input buffer; the same ordering must be used on both sides of a
// comparison.
type Descriptor struct {
	N        int
	K        int
	Channels []CCV
}

// splitChannels de-interleaves img into C independent planes.
func splitChannels(img Image) []Plane {
	planes := make([]Plane, img.C)
	for c := range planes {
		planes[c] = NewPlane(img.W, img.H)
	}
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			base := (y*img.W + x) * img.C
			for c := 0; c < img.C; c++ {
				planes[c].Set(x, y, img.Pix[base+c])
			}
		}
	}
	return planes
}

// channelCCV runs the blur -> quantize -> label -> tally -> assemble
// pipeline on a single channel plane.
func channelCCV(p Plane, cfg Config) (CCV, error) {
	blurred := boxBlur(p)
	quantized := quantize(blurred, cfg.K)
	labeled, err := label(quantized)
	if err != nil {
		return nil, err
	}
	comps := tally(labeled, quantized)
	return assemble(comps, cfg.K, cfg.Tau), nil
}

// BuildDescriptor runs the full CCV pipeline independently on each
// channel of img and packages the result. The per-channel pipelines run
// sequentially unless cfg.Parallel is set, in which case they fan out
// across goroutines via errgroup.Group: the channels share no mutable
// state, so either execution order is conformant.
func BuildDescriptor(img Image, cfg Config) (*Descriptor, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	planes := splitChannels(img)
	channels := make([]CCV, img.C)

	if cfg.Parallel {
		var g errgroup.Group
		for c := range planes {
			c := c
			g.Go(func() error {
				ccvC, err := channelCCV(planes[c], cfg)
				if err != nil {
					return err
				}
				channels[c] = ccvC
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for c := range planes {
			ccvC, err := channelCCV(planes[c], cfg)
			if err != nil {
				return nil, err
			}
			channels[c] = ccvC
		}
	}

	return &Descriptor{N: img.W * img.H, K: cfg.K, Channels: channels}, nil
}
