package keyed

import (
	"time"
)

// Typed accessors. Each returns defaultVal if the key is missing or the
// stored value cannot be converted to the requested type.

// String returns the string value for key, or defaultVal if missing or not a string.
func (c *Container) String(key, defaultVal string) string {
	if s, ok := c.Get(key, nil).(String); ok {
		return string(s)
	}
	return defaultVal
}

// Duration returns the duration value for key, or defaultVal if missing or invalid.
//
// Accepts:
//   - String: parsed with time.ParseDuration
//   - Int: interpreted as seconds
//   - Float: interpreted as seconds
func (c *Container) Duration(key string, defaultVal time.Duration) time.Duration {
	switch val := c.Get(key, nil).(type) {
	case String:
		if d, err := time.ParseDuration(string(val)); err == nil {
			return d
		}
	case Int:
		return time.Duration(val) * time.Second
	case Float:
		return time.Duration(float64(val) * float64(time.Second))
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a Bool.
// Use Is for truthiness of other types.
func (c *Container) Bool(key string, defaultVal bool) bool {
	if b, ok := c.Get(key, nil).(Bool); ok {
		return bool(b)
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - Int: used directly
//   - Float: converted only if it has no fractional part
func (c *Container) Int(key string, defaultVal int) int {
	switch val := c.Get(key, nil).(type) {
	case Int:
		return int(val)
	case Float:
		if val == Float(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Float returns the float64 value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - Float: used directly
//   - Int: converted to float64
func (c *Container) Float(key string, defaultVal float64) float64 {
	switch val := c.Get(key, nil).(type) {
	case Float:
		return float64(val)
	case Int:
		return float64(val)
	}
	return defaultVal
}

// StringSlice returns the string slice for key, or defaultVal if missing
// or if any element of the List is not a String.
func (c *Container) StringSlice(key string, defaultVal []string) []string {
	list, ok := c.Get(key, nil).(List)
	if !ok {
		return defaultVal
	}
	result := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(String)
		if !ok {
			return defaultVal
		}
		result = append(result, string(s))
	}
	return result
}
