// SPDX-License-Identifier: Apache-2.0

// Package profile defines the attribute record the matchers score against.
// Values are an explicit tagged union: only non-empty scalars participate in
// matching, and the exclusion of structured values is a type-level guarantee
// rather than a runtime probe.
package profile

import (
	"fmt"
	"sort"
)

// Value is either a Scalar or a Structured entry.
type Value interface {
	isValue()
}

// Scalar is a plain string attribute value.
type Scalar string

func (Scalar) isValue() {}

// Structured wraps a nested or non-string value. Structured entries are
// carried through loading untouched and never considered by the matchers.
type Structured struct {
	Raw any
}

func (Structured) isValue() {}

// Record maps attribute keys to values. A Record is treated as immutable
// for the duration of a resolution pass.
type Record map[string]Value

// Scalar returns the non-empty scalar value for key, if the record holds one.
func (r Record) Scalar(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(Scalar)
	if !ok || s == "" {
		return "", false
	}
	return string(s), true
}

// HasScalar reports whether the record holds a non-empty scalar for key.
func (r Record) HasScalar(key string) bool {
	_, ok := r.Scalar(key)
	return ok
}

// ScalarKeys returns the keys holding non-empty scalar values, in sorted
// order. The matchers iterate this slice so that tie-breaking between
// equally scored keys is deterministic.
func (r Record) ScalarKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		if r.HasScalar(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// FromFlat builds a Record from a plain string map. Empty values are kept;
// the matchers skip them by the non-empty scalar rule.
func FromFlat(flat map[string]string) Record {
	rec := make(Record, len(flat))
	for k, v := range flat {
		rec[k] = Scalar(v)
	}
	return rec
}

// FromAny converts a decoded document into a Record. Strings stay scalar;
// numbers and booleans are rendered to their string form (a form field wants
// "3.8", not a float); maps and slices become Structured; nil is dropped.
func FromAny(doc map[string]any) Record {
	rec := make(Record, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case nil:
			// Absent attribute.
		case string:
			rec[k] = Scalar(val)
		case bool, int, int64, uint64, float32, float64:
			rec[k] = Scalar(fmt.Sprintf("%v", val))
		default:
			rec[k] = Structured{Raw: v}
		}
	}
	return rec
}
