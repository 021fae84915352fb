package dictutil

import (
	"fmt"
	"maps"
	"slices"

	"github.com/cecil-the-coder/kitutil/pkg/types"
)

// DefaultIgnoredKeys are keys whose absence is filled silently. They are
// routinely omitted from user settings and do not deserve a warning.
var DefaultIgnoredKeys = []string{
	"regenerate",
	"_continue",
	"text",
	"bot_in_character_menu",
	"imgmodel_name",
	"tags",
	"override_settings",
}

// Reconciler backfills missing keys of a settings map from a map of
// required defaults, reporting the first missing key it finds.
type Reconciler struct {
	logger  types.Logger
	ignored map[string]struct{}
}

// NewReconciler creates a Reconciler. With no ignored keys given,
// DefaultIgnoredKeys is used.
func NewReconciler(logger types.Logger, ignoredKeys ...string) *Reconciler {
	if len(ignoredKeys) == 0 {
		ignoredKeys = DefaultIgnoredKeys
	}
	ignored := make(map[string]struct{}, len(ignoredKeys))
	for _, k := range ignoredKeys {
		ignored[k] = struct{}{}
	}
	return &Reconciler{logger: types.OrNop(logger), ignored: ignored}
}

// Fix reconciles target against required. See FixDict.
func (r *Reconciler) Fix(target, required map[string]interface{}, source string) (map[string]interface{}, bool) {
	return r.FixDict(target, required, source, false, "")
}

// FixDict inserts into target a copy of every value of required whose key is
// missing, recursing where both sides hold maps. A target value that is not a
// map is kept even when the default is a map.
//
// A warning and the applied default are logged for the first missing key
// only, and only when source is set, the key is not ignored and warned is
// false. The returned flag reports whether this call tree has warned, so
// callers can thread it through further calls. Missing keys are always
// filled, whether or not they were reported. Keys are visited in sorted
// order so the reported key is stable.
func (r *Reconciler) FixDict(target, required map[string]interface{}, source string, warned bool, path string) (map[string]interface{}, bool) {
	if target == nil {
		target = map[string]interface{}{}
	}

	for _, k := range slices.Sorted(maps.Keys(required)) {
		reqV := required[k]
		current := k
		if path != "" {
			current = path + "/" + k
		}

		v, present := target[k]
		if !present {
			if _, skip := r.ignored[k]; !skip && !warned && source != "" {
				r.logger.Warn(fmt.Sprintf("key %q missing from %q.", current, source), "path", current, "source", source)
				r.logger.Info(fmt.Sprintf("Applying default value for %q: %s.", current, repr(reqV)), "path", current)
				warned = true
			}
			target[k] = cloneValue(reqV)
			continue
		}

		reqMap, ok := asMap(reqV)
		if !ok {
			continue
		}
		if sub, ok := asMap(v); ok {
			target[k], warned = r.FixDict(sub, reqMap, source, warned, current)
		}
	}
	return target, warned
}

// FixDict reconciles target against required with a Reconciler using
// DefaultIgnoredKeys.
func FixDict(logger types.Logger, target, required map[string]interface{}, source string) (map[string]interface{}, bool) {
	return NewReconciler(logger).Fix(target, required, source)
}

func repr(v interface{}) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", val)
	}
}
