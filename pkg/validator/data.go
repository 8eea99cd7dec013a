package validator

import (
	"iter"
	"maps"
	"slices"
)

// DataSet is an insertion-ordered mapping from field key to value.
// Fields are validated in the order they were first set.
// The zero value and a nil *DataSet are empty and ready to use for reads.
type DataSet struct {
	keys   []string
	values map[string]any
}

// NewDataSet builds a DataSet from alternating key, value arguments.
// Non-string keys are skipped and a trailing key without a value is ignored.
func NewDataSet(kv ...any) *DataSet {
	d := &DataSet{values: make(map[string]any, len(kv)/2)}
	for i := 0; i < len(kv)-1; i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		d.Set(key, kv[i+1])
	}
	return d
}

// DataSetFromMap copies m into a DataSet. Go maps carry no order, so keys are
// inserted in sorted order to keep validation deterministic.
func DataSetFromMap(m map[string]any) *DataSet {
	d := &DataSet{values: make(map[string]any, len(m))}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		d.Set(key, m[key])
	}
	return d
}

// Set stores value under key. Existing keys keep their position.
func (d *DataSet) Set(key string, value any) *DataSet {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

func (d *DataSet) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

func (d *DataSet) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

func (d *DataSet) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *DataSet) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// All iterates over key, value pairs in insertion order.
func (d *DataSet) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}
		for _, key := range d.keys {
			if !yield(key, d.values[key]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the data.
func (d *DataSet) Map() map[string]any {
	if d == nil {
		return map[string]any{}
	}
	return maps.Clone(d.values)
}

// Clone returns a copy that shares no state with d. Values are copied shallowly.
func (d *DataSet) Clone() *DataSet {
	if d == nil {
		return &DataSet{values: map[string]any{}}
	}
	return &DataSet{
		keys:   slices.Clone(d.keys),
		values: maps.Clone(d.values),
	}
}
