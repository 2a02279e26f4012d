// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of values for JSON and simplified configuration
// documents, and a parser that constructs trees from source text.
package ast

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/mds/omap"
)

// Kind identifies the type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is an arbitrary value. The concrete type is one of *Object, Array,
// Bool, Number, String, or Null.
type Value interface {
	// Kind reports the type of the value.
	Kind() Kind

	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members ordered by key.
// Keys are unique: inserting a key that is already present has no effect.
type Object struct {
	members omap.Map[string, Value]
}

// A Member is a key-value pair, used to construct objects.
type Member struct {
	Key   string
	Value Value
}

// Field constructs a Member with the given key and value.
func Field(key string, value Value) Member { return Member{Key: key, Value: value} }

// NewObject constructs an object containing the given members. If a key
// occurs more than once, the first occurrence is kept.
func NewObject(members ...Member) *Object {
	o := &Object{members: omap.New[string, Value]()}
	for _, m := range members {
		o.Insert(m.Key, m.Value)
	}
	return o
}

// Kind satisfies the Value interface.
func (o *Object) Kind() Kind { return ObjectKind }

// Insert adds a member with the given key and value to o, and reports
// whether it did so. If key is already present, o is not changed and Insert
// reports false.
func (o *Object) Insert(key string, value Value) bool {
	if _, ok := o.members.GetOK(key); ok {
		return false
	}
	o.members.Set(key, value)
	return true
}

// Len reports the number of members in o.
func (o *Object) Len() int { return o.members.Len() }

// Has reports whether o has a member with the given key.
func (o *Object) Has(key string) bool { _, ok := o.members.GetOK(key); return ok }

// Get returns the value of the member of o with the given key, and reports
// whether it was found.
func (o *Object) Get(key string) (Value, bool) { return o.members.GetOK(key) }

// At returns the value of the member of o with the given key, or nil.
func (o *Object) At(key string) Value { return o.members.Get(key) }

// Keys returns an iterator over the keys of o in order.
func (o *Object) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := o.members.First(); it.IsValid(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// All returns an iterator over the members of o in order of their keys.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for it := o.members.First(); it.IsValid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for key, v := range o.All() {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteByte('"')
		sb.WriteString(key)
		sb.WriteString(`":`)
		sb.WriteString(v.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (a Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// At returns the element of a at offset i, or nil if i is out of range.
func (a Array) At(i int) Value {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// All returns an iterator over the elements of a and their offsets.
func (a Array) All() iter.Seq2[int, Value] { return slices.All(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (b Bool) Kind() Kind { return BoolKind }

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// A Number is a 64-bit floating-point value.
type Number float64

// Kind satisfies the Value interface.
func (n Number) Kind() Kind { return NumberKind }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A String is a string value. The text is stored as written in the source,
// without the enclosing quotation marks and without decoding escapes.
type String string

// Kind satisfies the Value interface.
func (s String) Kind() Kind { return StringKind }

// JSON satisfies the Value interface. The text is not escaped.
func (s String) JSON() string { return `"` + string(s) + `"` }

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }
