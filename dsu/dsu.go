/*
Package dsu provides a disjoint-set forest (union-find) sized for the
label counts produced by connected-component labeling of image-sized
pixel grids. It wraps github.com/carbocation/unionfind.
*/
package dsu

import "github.com/carbocation/unionfind"

// Forest is a disjoint-set forest over the integers [0, n]. The zero
// value is not usable; construct one with New.
//
// Forest wraps unionfind.ThreadSafeUnionFind, which reports an element
// that has never taken part in a Union as root -1 rather than as its own
// root; Find normalizes that sentinel back into the usual self-rooted
// singleton so callers never special-case untouched elements.
type Forest struct {
	uf *unionfind.ThreadSafeUnionFind
	n  int
}

// New returns a Forest of n+1 singletons over [0, n]. Index 0 is
// reserved by convention (callers that label starting at 1 never read
// it back).
func New(n int) *Forest {
	return &Forest{uf: unionfind.NewThreadSafeUnionFind(n + 1), n: n}
}

// Find returns the canonical representative of i's set.
func (f *Forest) Find(i int) int {
	if root := f.uf.Root(i); root >= 0 {
		return root
	}
	return i
}

// Union merges the sets containing a and b. After Union, Find(a) == Find(b).
func (f *Forest) Union(a, b int) {
	f.uf.Union(a, b)
}

// Len returns the number of elements the forest was created with, n+1.
func (f *Forest) Len() int {
	return f.n + 1
}
