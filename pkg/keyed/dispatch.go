package keyed

import (
	"context"
	"strings"

	"github.com/randalmurphal/keyed/pkg/keyed/observability"
)

// accessor runs one verb against key with the optional first argument.
type accessor func(c *Container, key string, arg Value) Value

// accessors maps verb prefixes onto the named methods.
var accessors = map[string]accessor{
	"get": func(c *Container, key string, arg Value) Value {
		return c.Get(key, arg)
	},
	"set": func(c *Container, key string, arg Value) Value {
		return c.Set(key, arg)
	},
	"is": func(c *Container, key string, arg Value) Value {
		return Bool(c.Is(key, arg))
	},
	"can": func(c *Container, key string, arg Value) Value {
		return Bool(c.Is(key, arg))
	},
	"has": func(c *Container, key string, _ Value) Value {
		return Bool(c.Has(key))
	},
}

// Call dispatches an accessor-style name such as "getSomething",
// "setYetAnother", "isEnabled", "canRetry" or "hasTimeout".
//
// The name is normalised and split at its first separator into a verb
// and a key. The first argument, if any, is the default for get/is/can
// and the value for set.
//
//	get -> Get(key, arg)       value or child *Container
//	set -> Set(key, arg)       the container itself
//	is  -> Is(key, arg)        Bool
//	can -> Is(key, arg)        Bool
//	has -> Has(key)            Bool
//
// Names without a verb, with an empty key, or with an unknown verb return
// an *AccessorError and leave the container untouched.
func (c *Container) Call(name string, args ...Value) (Value, error) {
	verb, key, err := splitAccessor(name)
	if err == nil {
		if _, ok := accessors[verb]; !ok {
			err = &AccessorError{Name: name, Verb: verb}
		}
	}
	c.opts.metrics.RecordDispatch(context.Background(), verb, err)
	if err != nil {
		observability.LogAccessorError(c.log, name, err)
		return nil, err
	}

	var arg Value
	if len(args) > 0 {
		arg = args[0]
	}
	return accessors[verb](c, key, arg), nil
}

// MustCall is like Call but panics on an invalid accessor.
func (c *Container) MustCall(name string, args ...Value) Value {
	v, err := c.Call(name, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func splitAccessor(name string) (verb, key string, err error) {
	normalized := Normalize(name)
	verb, key, found := strings.Cut(normalized, string(Separator))
	if !found || verb == "" || key == "" {
		return "", "", &AccessorError{Name: name}
	}
	return verb, key, nil
}
