package conf

import (
	"fmt"
	"reflect"
	"sort"
)

// List helpers mutate list-valued entries in place. Changes are in-memory
// until Save.

// AddToStringList appends values to the string list at key.
func (c *Config) AddToStringList(key string, values ...string) *Config {
	current := c.StringList(key)
	current = append(current, values...)
	return c.Set(key, current)
}

// RemoveFromStringList removes every occurrence of each value from the
// string list at key.
func (c *Config) RemoveFromStringList(key string, values ...string) *Config {
	drop := make(map[string]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}

	current := c.StringList(key)
	kept := current[:0]
	for _, v := range current {
		if _, ok := drop[v]; !ok {
			kept = append(kept, v)
		}
	}
	return c.Set(key, kept)
}

// DistinctStringList returns the string list at key with duplicates
// removed, preserving first-occurrence order. The config is not modified.
func (c *Config) DistinctStringList(key string) []string {
	current := c.StringList(key)
	seen := make(map[string]struct{}, len(current))
	out := make([]string, 0, len(current))
	for _, v := range current {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MakeStringListDistinct removes duplicates from the string list at key
// and writes the result back to the config.
func (c *Config) MakeStringListDistinct(key string) *Config {
	return c.Set(key, c.DistinctStringList(key))
}

// AddToIntList appends values to the integer list at key.
func (c *Config) AddToIntList(key string, values ...int) *Config {
	current := c.IntList(key)
	current = append(current, values...)
	return c.Set(key, current)
}

// RemoveFromIntList removes every occurrence of each value from the
// integer list at key.
func (c *Config) RemoveFromIntList(key string, values ...int) *Config {
	drop := make(map[int]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}

	current := c.IntList(key)
	kept := current[:0]
	for _, v := range current {
		if _, ok := drop[v]; !ok {
			kept = append(kept, v)
		}
	}
	return c.Set(key, kept)
}

// AddToFloatList appends values to the float list at key.
func (c *Config) AddToFloatList(key string, values ...float64) *Config {
	current := c.FloatList(key)
	current = append(current, values...)
	return c.Set(key, current)
}

// RemoveFromFloatList removes every occurrence of each value from the
// float list at key.
func (c *Config) RemoveFromFloatList(key string, values ...float64) *Config {
	drop := make(map[float64]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}

	current := c.FloatList(key)
	kept := current[:0]
	for _, v := range current {
		if _, ok := drop[v]; !ok {
			kept = append(kept, v)
		}
	}
	return c.Set(key, kept)
}

// MakeListDistinct removes duplicates from the list at key, whatever its
// element type, preserving first-occurrence order. Missing or non-list
// values are left untouched.
func (c *Config) MakeListDistinct(key string) *Config {
	raw := c.Get(key)
	if raw == nil {
		return c
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice {
		return c
	}

	seen := make(map[string]struct{}, rv.Len())
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		// Elements may be maps or nested lists, so identity is the
		// printed representation rather than the value itself.
		id := fmt.Sprintf("%#v", elem)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, elem)
	}
	return c.Set(key, out)
}

// ListKeys returns every dotted key whose value is a list, sorted for
// stable output.
func (c *Config) ListKeys() []string {
	keys := make([]string, 0)
	for _, key := range c.AllKeys() {
		raw := c.Get(key)
		if raw == nil {
			continue
		}
		rv := reflect.ValueOf(raw)
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
