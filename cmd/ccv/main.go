// Compares two images by Color Coherence Vector and prints their distance.

package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/krinnewitz/ccv"
)

const usageMessage = `Usage: %s <first image> <second image> <number of colors> <coherence threshold>
`

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usageMessage, os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(1)
	}

	args := flag.Args()
	numColors, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalf("invalid number of colors %q: %v", args[2], err)
	}
	coherenceThreshold, err := strconv.Atoi(args[3])
	if err != nil {
		log.Fatalf("invalid coherence threshold %q: %v", args[3], err)
	}

	img1, err := decodeImage(args[0])
	if err != nil {
		log.Fatalf("reading %s: %v", args[0], err)
	}
	img2, err := decodeImage(args[1])
	if err != nil {
		log.Fatalf("reading %s: %v", args[1], err)
	}

	cfg := ccv.Config{K: numColors, Tau: coherenceThreshold}

	d1, err := ccv.BuildDescriptor(img1, cfg)
	if err != nil {
		log.Fatalf("building descriptor for %s: %v", args[0], err)
	}
	d2, err := ccv.BuildDescriptor(img2, cfg)
	if err != nil {
		log.Fatalf("building descriptor for %s: %v", args[1], err)
	}

	dist, err := ccv.Distance(d1, d2)
	if err != nil {
		log.Fatalf("comparing descriptors: %v", err)
	}

	fmt.Println(dist)
}

// decodeImage reads an image file from disk and converts it to the raw,
// channel-last buffer BuildDescriptor expects.
func decodeImage(path string) (ccv.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return ccv.Image{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return ccv.Image{}, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			base := (y*w + x) * 3
			pix[base] = uint8(r >> 8)
			pix[base+1] = uint8(g >> 8)
			pix[base+2] = uint8(b >> 8)
		}
	}

	return ccv.Image{W: w, H: h, C: 3, Pix: pix}, nil
}
