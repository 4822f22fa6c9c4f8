package spaces

import (
	"fmt"
	"sort"
	"strings"

	"gorgonia.org/tensor"
)

// Dict represents a keyed collection of sub-spaces. Values in a Dict
// are map[string]interface{} with exactly the keys of the Dict, where
// each value is contained in the sub-space of the same key.
type Dict struct {
	spaces map[string]Space
	keys   []string
}

// NewDict returns a new Dict over the given sub-spaces
func NewDict(spaces map[string]Space) (*Dict, error) {
	keys := make([]string, 0, len(spaces))
	dictSpaces := make(map[string]Space, len(spaces))
	for key, space := range spaces {
		if space == nil {
			return nil, invalid("newDict", "sub-space %q is nil", key)
		}
		keys = append(keys, key)
		dictSpaces[key] = space
	}
	sort.Strings(keys)

	return &Dict{spaces: dictSpaces, keys: keys}, nil
}

// Keys returns the keys of the Dict in sorted order
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// At returns the sub-space at key
func (d *Dict) At(key string) (Space, bool) {
	space, ok := d.spaces[key]
	return space, ok
}

// Len returns the number of sub-spaces
func (d *Dict) Len() int {
	return len(d.keys)
}

// Shape returns the shape of the Dict, which is always empty since a
// Dict has no array layout of its own
func (d *Dict) Shape() []int {
	return []int{}
}

// Dtype returns tensor.String, the dtype of the Dict's keys
func (d *Dict) Dtype() tensor.Dtype {
	return tensor.String
}

// Seed seeds each sub-space. Sub-spaces are seeded in sorted key order
// with seed, seed+1, ...
func (d *Dict) Seed(seed uint64) {
	for i, key := range d.keys {
		d.spaces[key].Seed(seed + uint64(i))
	}
}

// Sample samples each sub-space
func (d *Dict) Sample() map[string]interface{} {
	sample := make(map[string]interface{}, len(d.keys))
	for _, key := range d.keys {
		sample[key] = d.spaces[key].SampleValue()
	}
	return sample
}

// SampleValue samples each sub-space
func (d *Dict) SampleValue() interface{} {
	return d.Sample()
}

// Contains returns whether x is in the space. The argument x must be a
// map[string]interface{} with exactly the keys of the Dict.
func (d *Dict) Contains(x interface{}) bool {
	m, ok := x.(map[string]interface{})
	if !ok || len(m) != len(d.keys) {
		return false
	}

	for _, key := range d.keys {
		v, ok := m[key]
		if !ok || !d.spaces[key].Contains(v) {
			return false
		}
	}
	return true
}

// Equals returns whether other is a Dict with the same keys, where
// each sub-space equals the sub-space of the same key in d
func (d *Dict) Equals(other Space) bool {
	o, ok := other.(*Dict)
	if !ok || len(o.keys) != len(d.keys) {
		return false
	}

	for _, key := range d.keys {
		space, ok := o.spaces[key]
		if !ok || !d.spaces[key].Equals(space) {
			return false
		}
	}
	return true
}

func (d *Dict) String() string {
	entries := make([]string, len(d.keys))
	for i, key := range d.keys {
		entries[i] = fmt.Sprintf("%q: %v", key, d.spaces[key])
	}
	return fmt.Sprintf("Dict(%v)", strings.Join(entries, ", "))
}
