package dictutil

import (
	"reflect"

	"github.com/cecil-the-coder/kitutil/internal/numeric"
	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// ConvertListsToTuples replaces, in place, every top-level value of m that is
// a two-element list of numbers with an immutable types.Pair holding the
// same elements. Booleans do not count as numbers. Other values, including
// nested maps, are left alone. It returns m.
func ConvertListsToTuples(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		if v == nil || reflect.TypeOf(v).Kind() != reflect.Slice {
			continue
		}
		if _, _, ok := numeric.PairOf(v); !ok {
			continue
		}
		rv := reflect.ValueOf(v)
		m[k] = types.NewPair(rv.Index(0).Interface(), rv.Index(1).Interface())
	}
	return m
}
