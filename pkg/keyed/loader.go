package keyed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/keyed/pkg/keyed/observability"
)

// FromYAML parses YAML data into a Container.
// An empty document yields an empty Container.
func FromYAML(data []byte, opts ...Option) (*Container, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fromDocument("yaml", doc, opts)
}

// FromJSON parses JSON data into a Container.
// Numbers with no fractional part are stored as Int; integers that fit in
// int64 keep every digit.
func FromJSON(data []byte, opts ...Option) (*Container, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse json: trailing data after document")
	}

	doc, err := jsonNumbers(doc)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromDocument("json", doc, opts)
}

func fromDocument(format string, doc any, opts []Option) (*Container, error) {
	o := buildOptions(opts)
	if doc == nil {
		observability.LogDecode(o.logger, format, 0)
		return New(nil, opts...), nil
	}

	v, err := ValueOf(doc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}
	m, ok := v.(Map)
	if !ok {
		return nil, fmt.Errorf("parse %s: %w", format, ErrNotMapping)
	}
	observability.LogDecode(o.logger, format, len(m))
	return New(m, opts...), nil
}

// jsonNumbers rewrites json.Number values as int64 or float64. Whole
// numbers that fit in int64 become int64.
func jsonNumbers(v any) (any, error) {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, err
		}
		if math.Abs(f) < 1<<63 && f == math.Trunc(f) {
			return int64(f), nil
		}
		return f, nil
	case []any:
		for i, item := range val {
			n, err := jsonNumbers(item)
			if err != nil {
				return nil, err
			}
			val[i] = n
		}
	case map[string]any:
		for k, item := range val {
			n, err := jsonNumbers(item)
			if err != nil {
				return nil, err
			}
			val[k] = n
		}
	}
	return v, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Container) MarshalYAML() (any, error) {
	return c.ToMap(), nil
}

// MarshalJSON implements json.Marshaler.
func (c *Container) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToMap())
}
