package keyed

import (
	"context"
	"log/slog"
	"reflect"
	"sort"

	"github.com/randalmurphal/keyed/pkg/keyed/observability"
)

// Container wraps a nested configuration map.
//
// Keys are normalised on every access, so "somethingElse" and
// "something_else" name the same entry. Reading a nested Map returns a
// child Container; the child is memoised, so repeated reads return the
// same instance until the entry is overwritten, removed or merged over.
//
// A child shares its Map with the parent: writes through the child are
// visible in the parent's data.
//
// Container is not safe for concurrent use. Callers must serialise Set,
// Remove and Merge against every other call.
type Container struct {
	data     Map
	children map[string]*Container
	opts     options
	log      *slog.Logger
}

// New creates a Container holding data. Keys of data and of every nested
// map are normalised; data itself is not retained.
func New(data Map, opts ...Option) *Container {
	c := newContainer(make(Map, len(data)), buildOptions(opts))
	return c.Merge(data)
}

func newContainer(data Map, o options) *Container {
	c := &Container{
		data:     data,
		children: make(map[string]*Container),
		opts:     o,
		log:      o.logger,
	}
	if o.path != "" {
		c.log = observability.EnrichLogger(o.logger, o.path)
	}
	return c
}

// FromMap converts data with ValueOf and wraps it in a Container.
func FromMap(data map[string]any, opts ...Option) (*Container, error) {
	v, err := ValueOf(data)
	if err != nil {
		return nil, err
	}
	m, _ := v.(Map)
	return New(m, opts...), nil
}

// Has returns true if key exists, including keys holding null.
func (c *Container) Has(key string) bool {
	_, ok := c.data[Normalize(key)]
	return ok
}

// Get returns the value for key, or def if key is missing.
//
// Nested maps are returned as a child *Container. The child is cached,
// so two reads of the same key return the same pointer. A List is
// returned as a copy.
func (c *Container) Get(key string, def Value) Value {
	k := Normalize(key)
	v, ok := c.data[k]
	if !ok {
		return def
	}
	m, isMap := v.(Map)
	if child, ok := c.children[k]; ok {
		// The map may have been replaced through another container
		// sharing this one's storage.
		if isMap && sameMap(child.data, m) {
			return child
		}
		delete(c.children, k)
	}
	if !isMap {
		if l, ok := v.(List); ok {
			return cloneValue(l)
		}
		return v
	}
	child := c.wrap(k, m)
	c.children[k] = child
	return child
}

// Lookup returns the value for key and whether it exists.
func (c *Container) Lookup(key string) (Value, bool) {
	if !c.Has(key) {
		return nil, false
	}
	return c.Get(key, nil), true
}

// Is returns the truthiness of the value for key, or of def if missing.
func (c *Container) Is(key string, def Value) bool {
	return Truthy(c.Get(key, def))
}

// Set stores v under key, replacing any existing value and evicting any
// cached child. Nested map keys are normalised; setting a *Container
// stores a copy of its data.
func (c *Container) Set(key string, v Value) *Container {
	c.Remove(key)
	c.data[Normalize(key)] = normalizeValue(v)
	return c
}

// Remove deletes key and its cached child. Missing keys are ignored.
func (c *Container) Remove(key string) *Container {
	k := Normalize(key)
	delete(c.data, k)
	delete(c.children, k)
	return c
}

// Merge overwrites the top-level entries of c with those of m. Nested
// maps are replaced whole, not merged. All cached children are dropped.
//
// When several keys of m normalise to the same key, the one already in
// normalised form wins; otherwise the last in sorted order wins.
func (c *Container) Merge(m Map) *Container {
	for _, k := range applyOrder(m) {
		c.data[Normalize(k)] = normalizeValue(m[k])
	}
	clear(c.children)

	if len(m) > 0 {
		observability.LogMerge(c.log, len(m))
		c.opts.metrics.RecordMerge(context.Background(), len(m))
	}
	return c
}

// IsEmpty returns true if the container holds no entries.
func (c *Container) IsEmpty() bool {
	return len(c.data) == 0
}

// Len returns the number of top-level entries.
func (c *Container) Len() int {
	return len(c.data)
}

// Keys returns the normalised top-level keys in sorted order.
func (c *Container) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Child returns the child container for key, or nil if key is missing
// or does not hold a nested map.
func (c *Container) Child(key string) *Container {
	child, _ := c.Get(key, nil).(*Container)
	return child
}

// Path returns the dotted location of the container, empty for a root
// created without WithPath.
func (c *Container) Path() string {
	return c.opts.path
}

// Snapshot returns a deep copy of the data, suitable for Merge into
// another container.
func (c *Container) Snapshot() Map {
	return c.cloneData()
}

// ToMap returns a deep copy of the data as plain Go values.
func (c *Container) ToMap() map[string]any {
	out, _ := Interface(c.data).(map[string]any)
	return out
}

// wrap builds the child for the normalised key k. The child adopts m
// without copying.
func (c *Container) wrap(k string, m Map) *Container {
	childOpts := c.opts
	childOpts.path = joinPath(c.opts.path, k)

	observability.LogChildWrapped(c.log, childOpts.path, len(m))
	c.opts.metrics.RecordChildWrap(context.Background())

	return newContainer(m, childOpts)
}

func sameMap(a, b Map) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

// cloneData returns a deep copy of the container's data.
func (c *Container) cloneData() Map {
	return cloneValue(c.data).(Map)
}

func cloneValue(v Value) Value {
	switch val := v.(type) {
	case Map:
		out := make(Map, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case List:
		out := make(List, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case *Container:
		return val.cloneData()
	}
	return v
}
