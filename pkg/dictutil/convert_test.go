package dictutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cecil-the-coder/kitutil/pkg/types"
)

func TestConvertListsToTuples(t *testing.T) {
	m := M{
		"range":   []interface{}{1, 10},
		"floats":  []float64{0.5, 1.5},
		"mixed":   []interface{}{1, 2.5},
		"bools":   []interface{}{true, false},
		"strings": []interface{}{"a", "b"},
		"long":    []interface{}{1, 2, 3},
		"bytes":   []byte{1, 2},
		"scalar":  7,
		"nested":  M{"inner": []interface{}{1, 2}},
		"nothing": nil,
	}

	result := ConvertListsToTuples(m)

	assert.Equal(t, types.NewPair(1, 10), m["range"])
	assert.Equal(t, types.NewPair(0.5, 1.5), m["floats"])
	assert.Equal(t, types.NewPair(1, 2.5), m["mixed"])
	assert.Equal(t, []interface{}{true, false}, m["bools"])
	assert.Equal(t, []interface{}{"a", "b"}, m["strings"])
	assert.Equal(t, []interface{}{1, 2, 3}, m["long"])
	assert.Equal(t, []byte{1, 2}, m["bytes"])
	assert.Equal(t, 7, m["scalar"])
	assert.Equal(t, M{"inner": []interface{}{1, 2}}, m["nested"])
	assert.Nil(t, m["nothing"])

	result["scalar"] = 8
	assert.Equal(t, 8, m["scalar"], "the same map is returned")
}

func TestClone_SharesPairs(t *testing.T) {
	src := ConvertListsToTuples(M{"r": []interface{}{1, 2}})
	assert.Equal(t, types.NewPair(1, 2), Clone(src)["r"])
}
