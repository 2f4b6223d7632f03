package keyed

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Value is a configuration value. Concrete types:
//
//   - String
//   - Int
//   - Float
//   - Bool
//   - List
//   - Map
//   - *Container (returned by reads of nested maps)
//
// The nil Value stands for null, and for "no default" in Get.
type Value interface {
	keyedValue() // sealed marker
}

// String is a string value.
type String string

// Int is a signed integer value.
type Int int64

// Float is a floating point value.
type Float float64

// Bool is a boolean value.
type Bool bool

// List is an ordered sequence of values. Lists are never wrapped.
type List []Value

// Map is a nested mapping. Reading a Map through a Container yields a
// child *Container wrapping it.
type Map map[string]Value

func (String) keyedValue()     {}
func (Int) keyedValue()        {}
func (Float) keyedValue()      {}
func (Bool) keyedValue()       {}
func (List) keyedValue()       {}
func (Map) keyedValue()        {}
func (*Container) keyedValue() {}

// ValueOf converts decoded Go data into a Value.
//
// Accepts nil, Value, string, bool, every int/uint/float kind,
// time.Duration (stored as its string form), time.Time (stored as an
// RFC 3339 string), []any, []string,
// map[string]any, map[string]string and map[any]any with string keys.
// Anything else returns a *ValueError wrapping ErrUnsupportedValue.
func ValueOf(v any) (Value, error) {
	return valueOf("", v)
}

func valueOf(path string, v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case *Container:
		return val.cloneData(), nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return uintValue(path, uint64(val))
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		return uintValue(path, val)
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case time.Duration:
		return String(val.String()), nil
	case time.Time:
		return String(val.Format(time.RFC3339Nano)), nil
	case []string:
		list := make(List, len(val))
		for i, s := range val {
			list[i] = String(s)
		}
		return list, nil
	case []any:
		list := make(List, len(val))
		for i, item := range val {
			iv, err := valueOf(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			list[i] = iv
		}
		return list, nil
	case map[string]string:
		m := make(Map, len(val))
		for k, s := range val {
			m[k] = String(s)
		}
		return m, nil
	case map[string]any:
		m := make(Map, len(val))
		for k, item := range val {
			iv, err := valueOf(joinPath(path, k), item)
			if err != nil {
				return nil, err
			}
			m[k] = iv
		}
		return m, nil
	case map[any]any:
		m := make(Map, len(val))
		for k, item := range val {
			ks, ok := k.(string)
			if !ok {
				return nil, &ValueError{Path: path, Type: fmt.Sprintf("map key %T", k)}
			}
			iv, err := valueOf(joinPath(path, ks), item)
			if err != nil {
				return nil, err
			}
			m[ks] = iv
		}
		return m, nil
	}
	return nil, &ValueError{Path: path, Type: fmt.Sprintf("%T", v)}
}

func uintValue(path string, u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, &ValueError{Path: path, Type: "uint64 overflowing int64"}
	}
	return Int(u), nil
}

// Interface converts a Value back into plain Go data: map[string]any,
// []any, string, int64, float64, bool or nil.
func Interface(v Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case String:
		return string(val)
	case Int:
		return int64(val)
	case Float:
		return float64(val)
	case Bool:
		return bool(val)
	case List:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Interface(item)
		}
		return out
	case Map:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Interface(item)
		}
		return out
	case *Container:
		return val.ToMap()
	}
	return nil
}

// Truthy reports the boolean reading of v used by the is/can accessors.
//
// nil, "", "0", 0, 0.0, false, an empty List and an empty Map are false.
// Everything else is true, including any *Container.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case String:
		return val != "" && val != "0"
	case Int:
		return val != 0
	case Float:
		return val != 0
	case Bool:
		return bool(val)
	case List:
		return len(val) > 0
	case Map:
		return len(val) > 0
	}
	return true
}

// normalizeValue returns v with every nested Map key normalised.
// Maps and lists are copied; scalars are returned unchanged.
func normalizeValue(v Value) Value {
	switch val := v.(type) {
	case Map:
		return normalizeMap(val)
	case List:
		out := make(List, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case *Container:
		return val.cloneData()
	}
	return v
}

func normalizeMap(m Map) Map {
	out := make(Map, len(m))
	for _, k := range applyOrder(m) {
		out[Normalize(k)] = normalizeValue(m[k])
	}
	return out
}

// applyOrder returns the keys of m in the order their entries are stored.
// Keys are sorted, and keys already in normalised form come last so they
// overwrite other spellings of the same key.
func applyOrder(m Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, nj := Normalize(keys[i]) == keys[i], Normalize(keys[j]) == keys[j]
		if ni != nj {
			return nj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
