package keyed_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/keyed/pkg/keyed"
)

// TestValueOf verifies conversion from decoded Go data.
func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want keyed.Value
	}{
		{"nil", nil, nil},
		{"string", "s", keyed.String("s")},
		{"bool", true, keyed.Bool(true)},
		{"int", 42, keyed.Int(42)},
		{"int8", int8(-3), keyed.Int(-3)},
		{"uint32", uint32(7), keyed.Int(7)},
		{"uint64", uint64(9), keyed.Int(9)},
		{"float32", float32(0.5), keyed.Float(0.5)},
		{"float64", 2.5, keyed.Float(2.5)},
		{"duration", 90 * time.Second, keyed.String("1m30s")},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), keyed.String("2024-01-02T03:04:05Z")},
		{"value passthrough", keyed.Int(1), keyed.Int(1)},
		{"string slice", []string{"a", "b"}, keyed.List{keyed.String("a"), keyed.String("b")}},
		{"any slice", []any{1, "x", nil}, keyed.List{keyed.Int(1), keyed.String("x"), nil}},
		{"string map", map[string]string{"k": "v"}, keyed.Map{"k": keyed.String("v")}},
		{
			"nested map",
			map[string]any{"outer": map[string]any{"inner": []any{true}}},
			keyed.Map{"outer": keyed.Map{"inner": keyed.List{keyed.Bool(true)}}},
		},
		{"any-keyed map", map[any]any{"k": 1}, keyed.Map{"k": keyed.Int(1)}},
		{"container", keyed.New(keyed.Map{"a": keyed.Int(1)}), keyed.Map{"a": keyed.Int(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keyed.ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestValueOf_Unsupported verifies unsupported data reports its path.
func TestValueOf_Unsupported(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		wantPath string
	}{
		{"struct", struct{}{}, ""},
		{"channel in map", map[string]any{"ch": make(chan int)}, "ch"},
		{"nested in list", map[string]any{"a": []any{1, struct{}{}}}, "a[1]"},
		{"non-string key", map[string]any{"m": map[any]any{1: "x"}}, "m"},
		{"uint64 overflow", uint64(math.MaxUint64), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := keyed.ValueOf(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, keyed.ErrUnsupportedValue))

			var valErr *keyed.ValueError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantPath, valErr.Path)
		})
	}
}

// TestFromMap verifies construction from plain Go maps.
func TestFromMap(t *testing.T) {
	c, err := keyed.FromMap(map[string]any{
		"something":  "else",
		"child":      map[string]any{"something": false},
		"yetAnother": true,
	})
	require.NoError(t, err)
	assert.Equal(t, keyed.Bool(true), c.Get("yet_another", nil))
	assert.Equal(t, keyed.Bool(false), c.Child("child").Get("something", nil))

	_, err = keyed.FromMap(map[string]any{"bad": func() {}})
	assert.ErrorIs(t, err, keyed.ErrUnsupportedValue)

	empty, err := keyed.FromMap(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

// TestInterface verifies conversion back to Go data.
func TestInterface(t *testing.T) {
	assert.Nil(t, keyed.Interface(nil))
	assert.Equal(t, "s", keyed.Interface(keyed.String("s")))
	assert.Equal(t, int64(3), keyed.Interface(keyed.Int(3)))
	assert.Equal(t, 1.5, keyed.Interface(keyed.Float(1.5)))
	assert.Equal(t, false, keyed.Interface(keyed.Bool(false)))
	assert.Equal(t, []any{"a", nil}, keyed.Interface(keyed.List{keyed.String("a"), nil}))
	assert.Equal(t, map[string]any{"k": int64(1)}, keyed.Interface(keyed.Map{"k": keyed.Int(1)}))
	assert.Equal(t, map[string]any{"k": true}, keyed.Interface(keyed.New(keyed.Map{"k": keyed.Bool(true)})))
}

// TestTruthy verifies the boolean reading used by is/can.
func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    keyed.Value
		want bool
	}{
		{"nil", nil, false},
		{"empty string", keyed.String(""), false},
		{"zero string", keyed.String("0"), false},
		{"false string", keyed.String("false"), true},
		{"text", keyed.String("x"), true},
		{"zero int", keyed.Int(0), false},
		{"int", keyed.Int(-1), true},
		{"zero float", keyed.Float(0), false},
		{"float", keyed.Float(0.1), true},
		{"false", keyed.Bool(false), false},
		{"true", keyed.Bool(true), true},
		{"empty list", keyed.List{}, false},
		{"list", keyed.List{nil}, true},
		{"empty map", keyed.Map{}, false},
		{"map", keyed.Map{"a": nil}, true},
		{"empty container", keyed.New(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyed.Truthy(tt.v))
		})
	}
}
