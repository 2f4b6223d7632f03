/*
Package keyed provides normalised, object-like access to nested
configuration maps.

# Overview

A Container wraps a Map of configuration values. Every key is normalised
on the way in and on every lookup, so differently-cased spellings of a key
resolve to the same entry:

	c := keyed.New(keyed.Map{
	    "something":   keyed.String("else"),
	    "child":       keyed.Map{"something": keyed.Bool(false)},
	    "yet_another": keyed.Bool(true),
	})

	c.Get("something", nil)     // String("else")
	c.Get("yetAnother", nil)    // Bool(true)
	c.Has("YetAnother")         // true
	c.Get("missing", keyed.String("fallback")) // String("fallback")

# Key Normalisation

Normalize inserts an underscore before each uppercase letter and before
each run of digits, then lowercases:

	somethingElse  -> something_else
	YetAnother     -> yet_another
	AndYetAnother2 -> and_yet_another_2

Already-normalised keys are left unchanged.

# Nested Maps

Reading a nested Map returns a child *Container. The child is cached, so
two reads return the same pointer, and it shares storage with the parent:

	child := c.Child("child")
	child.Set("other", keyed.Int(1))
	c.ToMap()["child"] // map[other:1 something:false]

Set, Remove and Merge evict cached children for the keys they touch;
Merge evicts all of them. A cached child is only returned while its map
is still the one stored under the key. Merge is shallow: a nested map in
the merged Map replaces the existing one whole.

# Accessor Dispatch

Call maps accessor-style names onto the named methods:

	c.Call("getSomething")                    // String("else")
	c.Call("setSomething", keyed.String("x")) // c
	c.Call("isYetAnother")                    // Bool(true)
	c.Call("canOther")                        // Bool(false)
	c.Call("hasAnother")                      // Bool(false)
	c.Call("thisSucks")                       // ErrInvalidAccessor

# Typed Extraction

String, Int, Float, Bool, Duration and StringSlice return a typed value or
the given default when the key is missing or holds another type.

# Decoding

FromYAML and FromJSON decode caller-supplied bytes. Containers implement
yaml.Marshaler and json.Marshaler. Reading files or the environment is
left to the caller.

# Thread Safety

Container is not safe for concurrent use. Reads may populate the child
cache, so even concurrent Get calls need external locking.
*/
package keyed
