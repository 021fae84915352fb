package types

import "fmt"

// Pair is an immutable ordered pair of numbers, typically a (low, high)
// range. The zero value holds two nil elements.
type Pair struct {
	first  interface{}
	second interface{}
}

// NewPair creates a Pair from two values.
func NewPair(first, second interface{}) Pair {
	return Pair{first: first, second: second}
}

// First returns the first element.
func (p Pair) First() interface{} { return p.first }

// Second returns the second element.
func (p Pair) Second() interface{} { return p.second }

// Values returns both elements.
func (p Pair) Values() (interface{}, interface{}) { return p.first, p.second }

// String renders the pair as "(first, second)".
func (p Pair) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// MarshalYAML renders the pair as a two-element sequence.
func (p Pair) MarshalYAML() (interface{}, error) {
	return []interface{}{p.first, p.second}, nil
}
