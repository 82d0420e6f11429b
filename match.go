package ccv

// Match represents an image matched by a similarity query.
type Match struct {
	// ID is the ID of the matched image, as passed to Store.Add.
	ID interface{}

	// Distance is the CCV distance (see Distance) between the query and
	// this match. The lower, the better the match.
	Distance float64
}

type matches []*Match

func (m matches) Len() int           { return len(m) }
func (m matches) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }
func (m matches) Less(i, j int) bool { return m[i].Distance < m[j].Distance }
