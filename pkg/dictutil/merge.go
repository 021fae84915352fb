package dictutil

import "github.com/cecil-the-coder/kitutil/internal/numeric"

// DeepMerge returns a new map holding base overlaid with override. Keys
// whose values are maps on both sides merge recursively; otherwise the
// override value wins. Neither argument is modified and the result shares no
// maps or lists with them.
func DeepMerge(base, override map[string]interface{}) map[string]interface{} {
	result := Clone(base)
	mergeInto(result, Clone(override))
	return result
}

func mergeInto(dst, src map[string]interface{}) {
	for k, v := range src {
		if dm, ok := asMap(dst[k]); ok {
			if sm, ok := asMap(v); ok {
				mergeInto(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
}

// UpdateInPlace merges u into d and then copies every key of d that u lacks
// into u, so both end up holding the same keys. Values from u win. Nested
// maps in d are merged in place and then replaced by u's (backfilled) maps.
// It returns u; a nil u is replaced by a new map.
func UpdateInPlace(d, u map[string]interface{}) map[string]interface{} {
	return update(d, u, false)
}

// SumUpdateInPlace behaves like UpdateInPlace, except that when u holds a
// number and d already holds a number under the same key the two are added.
// Integer sums stay integers; float sums are rounded to the larger number of
// decimal places of the two operands. Booleans are never summed.
func SumUpdateInPlace(d, u map[string]interface{}) map[string]interface{} {
	return update(d, u, true)
}

// UpdateMatchedKeysInPlace writes every key of u into d and returns d.
// Nested maps are combined with UpdateInPlace, but u itself is not
// backfilled with d's top-level keys.
func UpdateMatchedKeysInPlace(d, u map[string]interface{}) map[string]interface{} {
	if d == nil {
		d = map[string]interface{}{}
	}
	for k, v := range u {
		if um, ok := asMap(v); ok {
			if dm, ok := subMap(d, k); ok {
				d[k] = UpdateInPlace(dm, um)
				continue
			}
		}
		d[k] = v
	}
	return d
}

// Update is the pure form of UpdateInPlace: it returns the merged map
// without touching d or u.
func Update(d, u map[string]interface{}) map[string]interface{} {
	return UpdateInPlace(Clone(d), Clone(u))
}

// SumUpdate is the pure form of SumUpdateInPlace.
func SumUpdate(d, u map[string]interface{}) map[string]interface{} {
	return SumUpdateInPlace(Clone(d), Clone(u))
}

// UpdateMatchedKeys is the pure form of UpdateMatchedKeysInPlace.
func UpdateMatchedKeys(d, u map[string]interface{}) map[string]interface{} {
	return UpdateMatchedKeysInPlace(Clone(d), Clone(u))
}

func update(d, u map[string]interface{}, sum bool) map[string]interface{} {
	if d == nil {
		d = map[string]interface{}{}
	}
	if u == nil {
		u = map[string]interface{}{}
	}

	for k, v := range u {
		if um, ok := asMap(v); ok {
			if dm, ok := subMap(d, k); ok {
				d[k] = update(dm, um, sum)
				continue
			}
			d[k] = v
			continue
		}
		if sum {
			if total, ok := addNumbers(d, k, v); ok {
				d[k] = total
				u[k] = total
				continue
			}
		}
		d[k] = v
	}

	for k, v := range d {
		if _, ok := u[k]; !ok {
			u[k] = v
		}
	}
	return u
}

// subMap returns d[k] as a map to merge into. A missing key yields an empty
// map; a present non-map value yields false so the caller overrides it.
func subMap(d map[string]interface{}, k string) (map[string]interface{}, bool) {
	existing, present := d[k]
	if !present {
		return map[string]interface{}{}, true
	}
	return asMap(existing)
}

// addNumbers returns d[k]+v when v is a number and d[k] is missing or a
// number.
func addNumbers(d map[string]interface{}, k string, v interface{}) (interface{}, bool) {
	incoming, ok := numeric.FromValue(v)
	if !ok {
		return nil, false
	}
	existing, present := d[k]
	if !present {
		return v, true
	}
	current, ok := numeric.FromValue(existing)
	if !ok {
		return nil, false
	}
	return numeric.Sum(current, incoming).Value(), true
}
