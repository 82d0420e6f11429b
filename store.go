package ccv

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"sort"
	"sync"
)

// Store is a data structure that holds descriptors keyed by an opaque ID.
// It holds CCV descriptors, not the images they were built from.
//
// Store's methods are concurrency safe. Store implements the GobDecoder
// and GobEncoder interfaces; the wire format is a version int, followed
// by K, followed by the candidate count, followed by each candidate's id,
// N, and per-channel [α,β]×K buckets, gzip compressed.
//
// A CCV has no sparse structure to bucket on — every one of its K bins is
// populated for every image. Query therefore scans all candidates and
// scores each with Distance; this is the correct trade for CCV's dense,
// fixed-size descriptor.
type Store struct {
	sync.RWMutex

	// All descriptors in the store, or rather, the candidates for a
	// query.
	candidates []candidate

	// k is the color-bin count shared by every descriptor in the store.
	// It is fixed by the first Add and enforced on every subsequent one.
	k int

	// Modified reports whether this store was changed since it was
	// loaded or created.
	Modified bool
}

// NewStore returns a new, empty descriptor store.
func NewStore() *Store {
	return new(Store)
}

// Add adds a descriptor to the store under id. The provided ID is the
// value returned as the result of a similarity query. All descriptors
// added to one store must share the same K; a mismatch is reported as a
// *ComparisonMismatch.
func (store *Store) Add(id interface{}, desc *Descriptor) error {
	store.Lock()
	defer store.Unlock()

	if len(store.candidates) == 0 {
		store.k = desc.K
	} else if desc.K != store.k {
		return &ComparisonMismatch{Reason: fmt.Sprintf("store holds K=%d descriptors, got K=%d", store.k, desc.K)}
	}

	// We need this for when we serialize the store.
	gob.Register(id)

	store.candidates = append(store.candidates, candidate{id: id, descriptor: desc})
	store.Modified = true
	return nil
}

// Query performs a similarity search for desc against every candidate in
// the store and returns all matches, sorted by Distance (best, i.e.
// lowest, first).
func (store *Store) Query(desc *Descriptor) ([]*Match, error) {
	store.RLock()
	defer store.RUnlock()

	if len(store.candidates) == 0 {
		return nil, nil
	}

	result := make(matches, 0, len(store.candidates))
	for _, c := range store.candidates {
		d, err := Distance(desc, c.descriptor)
		if err != nil {
			return nil, err
		}
		result = append(result, &Match{ID: c.id, Distance: d})
	}
	sort.Sort(result)

	return result, nil
}

// Size returns the number of descriptors currently in the store.
func (store *Store) Size() int {
	store.RLock()
	defer store.RUnlock()

	return len(store.candidates)
}

// GobDecode reconstructs the store from a binary representation.
func (store *Store) GobDecode(from []byte) error {
	store.Lock()
	defer store.Unlock()

	buffer := bytes.NewReader(from)
	decompressor, err := gzip.NewReader(buffer)
	if err != nil {
		return fmt.Errorf("unable to open decompressor: %w", err)
	}
	defer decompressor.Close()
	decoder := gob.NewDecoder(decompressor)

	var version int
	if err := decoder.Decode(&version); err != nil {
		return fmt.Errorf("unable to decode store version: %w", err)
	}
	// So far, all previous versions accepted.

	if err := decoder.Decode(&store.k); err != nil {
		return fmt.Errorf("unable to decode store K: %w", err)
	}

	var size int
	if err := decoder.Decode(&size); err != nil {
		return fmt.Errorf("unable to decode candidate length: %w", err)
	}
	store.candidates = make([]candidate, size)
	for i := 0; i < size; i++ {
		if err := decoder.Decode(&store.candidates[i].id); err != nil {
			return fmt.Errorf("unable to decode candidate ID: %w", err)
		}
		desc := &Descriptor{K: store.k}
		if err := decoder.Decode(&desc.N); err != nil {
			return fmt.Errorf("unable to decode candidate pixel count: %w", err)
		}
		if err := decoder.Decode(&desc.Channels); err != nil {
			return fmt.Errorf("unable to decode candidate channels: %w", err)
		}
		store.candidates[i].descriptor = desc
	}

	return nil
}

// GobEncode places a binary representation of the store in a byte slice.
func (store *Store) GobEncode() ([]byte, error) {
	store.RLock()
	defer store.RUnlock()

	buffer := new(bytes.Buffer)
	compressor := gzip.NewWriter(buffer)
	encoder := gob.NewEncoder(compressor)

	if err := encoder.Encode(1); err != nil {
		return nil, fmt.Errorf("unable to encode store version: %w", err)
	}
	if err := encoder.Encode(store.k); err != nil {
		return nil, fmt.Errorf("unable to encode store K: %w", err)
	}

	// Candidates are encoded manually because the encoder does not have
	// access to the unexported candidate struct's fields.
	if err := encoder.Encode(len(store.candidates)); err != nil {
		return nil, fmt.Errorf("unable to encode candidate length: %w", err)
	}
	for _, c := range store.candidates {
		if err := encoder.Encode(&c.id); err != nil {
			return nil, fmt.Errorf("unable to encode candidate ID: %w", err)
		}
		if err := encoder.Encode(c.descriptor.N); err != nil {
			return nil, fmt.Errorf("unable to encode candidate pixel count: %w", err)
		}
		if err := encoder.Encode(c.descriptor.Channels); err != nil {
			return nil, fmt.Errorf("unable to encode candidate channels: %w", err)
		}
	}

	if err := compressor.Close(); err != nil {
		return nil, fmt.Errorf("unable to close compressor: %w", err)
	}

	return buffer.Bytes(), nil
}
