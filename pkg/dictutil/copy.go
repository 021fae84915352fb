package dictutil

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"

	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// copier deep-copies maps and lists. Pairs are immutable and are shared
// rather than walked, since their fields are unexported.
var copier = func() copystructure.Config {
	copiers := make(map[reflect.Type]copystructure.CopierFunc, len(copystructure.Copiers)+1)
	for t, fn := range copystructure.Copiers {
		copiers[t] = fn
	}
	copiers[reflect.TypeOf(types.Pair{})] = func(v interface{}) (interface{}, error) {
		return v, nil
	}
	return copystructure.Config{Copiers: copiers}
}()

// Clone returns a deep copy of m. A nil map clones to an empty map.
// Values that cannot be copied (channels, funcs) are a programming error and
// cause a panic.
func Clone(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	c, err := copier.Copy(m)
	if err != nil {
		panic(fmt.Sprintf("dictutil: cannot deep copy map: %v", err))
	}
	return c.(map[string]interface{})
}

func cloneValue(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	c, err := copier.Copy(v)
	if err != nil {
		panic(fmt.Sprintf("dictutil: cannot deep copy value: %v", err))
	}
	return c
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}
