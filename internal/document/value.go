// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	// Null is the JSON null literal. The zero Value is Null.
	Null Kind = iota
	// Bool is true or false.
	Bool
	// Number is any JSON number, stored as its literal text.
	Number
	// String is a JSON string.
	String
	// Sequence is a JSON array.
	Sequence
	// Mapping is a JSON object.
	Mapping
)

var kindNames = [...]string{
	Null:     "null",
	Bool:     "bool",
	Number:   "number",
	String:   "string",
	Sequence: "sequence",
	Mapping:  "mapping",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Member is a single key/value entry of a mapping.
type Member struct {
	Key   string
	Value Value
}

// Value is one node of a configuration document.
//
// Values are immutable once built; accessors that return slices return
// copies.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents or number literal
	items   []Value
	members []Member
	index   map[string]int
}

// NullValue returns the null value.
func NullValue() Value {
	return Value{}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: Bool, boolean: b}
}

// NumberValue returns a number value holding the given literal.
// The literal is not validated; use [Parse] for untrusted text.
func NumberValue(n json.Number) Value {
	return Value{kind: Number, text: n.String()}
}

// IntValue returns a number value for an integer.
func IntValue(i int64) Value {
	return Value{kind: Number, text: strconv.FormatInt(i, 10)}
}

// FloatValue returns a number value for a float. NaN and infinities have no
// JSON form and are rejected.
func FloatValue(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrUnsupportedNumber, f)
	}
	return Value{kind: Number, text: strconv.FormatFloat(f, 'g', -1, 64)}, nil
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{kind: String, text: s}
}

// SequenceValue returns a sequence of the given items.
func SequenceValue(items ...Value) Value {
	v := Value{kind: Sequence, items: make([]Value, len(items))}
	copy(v.items, items)
	return v
}

// MappingValue returns a mapping of the given members in order. A repeated
// key keeps the position of its first occurrence and the value of its last.
func MappingValue(members ...Member) Value {
	v := Value{kind: Mapping, members: make([]Member, 0, len(members))}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}
	return v
}

func (v *Value) set(key string, val Value) {
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if i, ok := v.index[key]; ok {
		v.members[i].Value = val
		return
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// Bool returns the boolean held by v and whether v is a Bool.
func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == Bool
}

// Number returns the number literal held by v and whether v is a Number.
func (v Value) Number() (json.Number, bool) {
	if v.kind != Number {
		return "", false
	}
	return json.Number(v.text), true
}

// Float64 returns v as a float64. It fails when v is not a Number.
func (v Value) Float64() (float64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("%w: have %s, want %s", ErrWrongKind, v.kind, Number)
	}
	return strconv.ParseFloat(v.text, 64)
}

// Int64 returns v as an int64. It fails when v is not a Number or the
// literal is not an integer in range.
func (v Value) Int64() (int64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("%w: have %s, want %s", ErrWrongKind, v.kind, Number)
	}
	return strconv.ParseInt(v.text, 10, 64)
}

// Str returns the string held by v and whether v is a String.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.text, true
}

// Len returns the number of items of a Sequence or members of a Mapping,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.items)
	case Mapping:
		return len(v.members)
	default:
		return 0
	}
}

// Items returns a copy of the items of a Sequence, or nil.
func (v Value) Items() []Value {
	if v.kind != Sequence {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Members returns a copy of the members of a Mapping in document order, or nil.
func (v Value) Members() []Member {
	if v.kind != Mapping {
		return nil
	}
	out := make([]Member, len(v.members))
	copy(out, v.members)
	return out
}

// Keys returns the keys of a Mapping in document order, or nil.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Get returns the value stored under key in a Mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}
	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}
	return v.members[i].Value, true
}

// Index returns the i-th item of a Sequence.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Sequence || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Equal reports whether v and other hold the same document. Numbers compare
// by numeric value and mappings compare without regard to key order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.boolean == other.boolean
	case String:
		return v.text == other.text
	case Number:
		if v.text == other.text {
			return true
		}
		a, errA := strconv.ParseFloat(v.text, 64)
		b, errB := strconv.ParseFloat(other.text, 64)
		return errA == nil && errB == nil && a == b
	case Sequence:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case Mapping:
		if len(v.members) != len(other.members) {
			return false
		}
		for _, m := range v.members {
			o, ok := other.Get(m.Key)
			if !ok || !m.Value.Equal(o) {
				return false
			}
		}
		return true
	}

	return false
}

// String renders v as compact JSON.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return string(b)
}
