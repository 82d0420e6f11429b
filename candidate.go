package ccv

// candidate represents a descriptor held by a Store: a candidate to be
// selected as a result of a similarity query.
type candidate struct {
	// id is the unique ID that identifies the image, as passed to
	// Store.Add.
	id interface{}

	// descriptor is the full CCV descriptor for this candidate. A CCV
	// descriptor has no sparse index to bucket on: comparing it against
	// a query requires the whole thing, so Store keeps it whole and
	// scans linearly (see Store.Query).
	descriptor *Descriptor
}
