// Package dictutil reconciles and merges nested configuration maps.
//
// Maps are map[string]interface{} as produced by YAML and JSON decoders.
// Every merge comes in two flavours: a pure function that leaves its inputs
// untouched (DeepMerge, Update, SumUpdate, UpdateMatchedKeys) and an
// in-place function whose name says so and which mutates and returns one of
// its arguments (UpdateInPlace, SumUpdateInPlace, UpdateMatchedKeysInPlace).
//
// In every variant a map paired with a non-map never recurses: the
// overriding side wins outright. Lists are replaced, never merged.
package dictutil
