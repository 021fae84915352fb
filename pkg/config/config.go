// Package config loads YAML (or JSON) settings files into nested maps and
// reconciles them against a map of defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/kitutil/pkg/dictutil"
	"github.com/cecil-the-coder/kitutil/pkg/types"
)

var (
	// ErrEmptyPath is returned when a settings path is empty.
	ErrEmptyPath = errors.New("config path cannot be empty")
	// ErrNotMapping is returned when a document's top level is not a mapping.
	ErrNotMapping = errors.New("config document is not a mapping")
)

// ReadFile reads a settings file after cleaning its path.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

// Parse decodes a YAML document into a nested map. JSON documents are valid
// YAML and are accepted too. An empty document yields an empty map.
func Parse(data []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		return map[string]interface{}{}, nil
	}
	m, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}
	return m, nil
}

// LoadFile reads and parses a settings file.
func LoadFile(path string) (map[string]interface{}, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Loader loads settings files and backfills them from defaults.
type Loader struct {
	defaults   map[string]interface{}
	reconciler *dictutil.Reconciler
}

// NewLoader creates a Loader that fills missing keys from defaults, warning
// about the first one through logger. ignoredKeys replaces
// dictutil.DefaultIgnoredKeys when given.
func NewLoader(defaults map[string]interface{}, logger types.Logger, ignoredKeys ...string) *Loader {
	return &Loader{
		defaults:   defaults,
		reconciler: dictutil.NewReconciler(logger, ignoredKeys...),
	}
}

// Load reads path and reconciles it against the loader's defaults, naming
// the file as the source in warnings. The returned flag reports whether a
// missing key was reported.
func (l *Loader) Load(path string) (map[string]interface{}, bool, error) {
	m, err := LoadFile(path)
	if err != nil {
		return nil, false, err
	}
	m, warned := l.Reconcile(m, filepath.Base(path))
	return m, warned, nil
}

// Reconcile backfills m from the loader's defaults.
func (l *Loader) Reconcile(m map[string]interface{}, source string) (map[string]interface{}, bool) {
	return l.reconciler.Fix(m, l.defaults, source)
}

// Overlay loads each path in order and deep-merges later files over earlier
// ones. Lists from later files replace earlier lists.
func Overlay(paths ...string) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	for _, p := range paths {
		m, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		result = dictutil.DeepMerge(result, m)
	}
	return result, nil
}

// Marshal renders a map as YAML.
func Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
