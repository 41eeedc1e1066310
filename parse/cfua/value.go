package cfua

// cfua 包实现了 CFUA 配置格式：一个有序的键值文档模型、单遍字符状态机解析器，
// 以及保证往返一致的序列化器。
//
// 范围：
// - 整数（二进制 / 十六进制 / 八进制 / 十进制）、浮点、布尔、多行字符串
// - 两种数组写法（逗号简单数组 / 井号多行数组）
// - @section 扁平标记、% 注释
// - 确定性错误（遇到第一个错误即失败）
//
// 非目标（设计如此）：
// - 带作用域的嵌套 section
// - 流式解析

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// =========================
// Value Model
// =========================

// Type identifies the variant held by a Value.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeInteger
	TypeFloat
	TypeString
	TypeBoolean
	TypeArray
	TypeSection
)

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeArray:
		return "array"
	case TypeSection:
		return "section"
	default:
		return "invalid"
	}
}

// Value is a single CFUA value. The zero Value is invalid and cannot be
// serialized.
type Value struct {
	typ   Type
	i     int64
	f     float64
	s     string
	b     bool
	elems []Value
}

func Integer(i int64) Value { return Value{typ: TypeInteger, i: i} }

func Float(f float64) Value { return Value{typ: TypeFloat, f: f} }

func String(s string) Value { return Value{typ: TypeString, s: s} }

func Boolean(b bool) Value { return Value{typ: TypeBoolean, b: b} }

// Section returns the unit value stored for an @name line. The name itself is
// the pair's key.
func Section() Value { return Value{typ: TypeSection} }

// Array returns an array value holding a copy of elems. Marshal only accepts
// arrays whose elements share one scalar type (Integer and Float are distinct);
// the builders in array.go always produce such arrays.
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{typ: TypeArray, elems: cp}
}

func (v Value) Type() Type { return v.typ }

func (v Value) AsInteger() (int64, bool) { return v.i, v.typ == TypeInteger }

func (v Value) AsFloat() (float64, bool) { return v.f, v.typ == TypeFloat }

func (v Value) AsString() (string, bool) { return v.s, v.typ == TypeString }

func (v Value) AsBoolean() (bool, bool) { return v.b, v.typ == TypeBoolean }

// AsArray returns a copy of the array elements.
func (v Value) AsArray() ([]Value, bool) {
	if v.typ != TypeArray {
		return nil, false
	}
	cp := make([]Value, len(v.elems))
	copy(cp, v.elems)
	return cp, true
}

// Equal reports structural equality. NaN floats compare equal to each other.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case TypeInteger:
		return v.i == o.i
	case TypeFloat:
		if math.IsNaN(v.f) || math.IsNaN(o.f) {
			return math.IsNaN(v.f) && math.IsNaN(o.f)
		}
		return v.f == o.f
	case TypeString:
		return v.s == o.s
	case TypeBoolean:
		return v.b == o.b
	case TypeArray:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	}
	return true
}

// String renders the value for display. Scalars use their CFUA text, strings
// are returned verbatim and arrays use the single-line bracket form.
func (v Value) String() string {
	switch v.typ {
	case TypeInteger:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return formatFloat(v.f)
	case TypeString:
		return v.s
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	case TypeArray:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			if e.typ == TypeString {
				parts[i] = strconv.Quote(e.s)
			} else {
				parts[i] = e.String()
			}
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeSection:
		return "@"
	}
	return "<invalid>"
}

// =========================
// Document
// =========================

// Pair is one entry of a Document.
type Pair struct {
	Key   string
	Value Value
}

// Document is an ordered sequence of key/value pairs. Keys may repeat; lookups
// return the first pair with a matching key.
//
// A Document may be read concurrently, but appends must be serialized by the
// caller.
type Document struct {
	pairs []Pair
}

func New() *Document {
	return &Document{}
}

// Append adds a pair to the end of the document. The pair is not validated;
// Marshal rejects invalid names, nested or mixed-type arrays and zero Values.
func (d *Document) Append(key string, v Value) {
	d.pairs = append(d.pairs, Pair{Key: key, Value: v})
}

func (d *Document) AppendInteger(key string, i int64) { d.Append(key, Integer(i)) }

func (d *Document) AppendFloat(key string, f float64) { d.Append(key, Float(f)) }

func (d *Document) AppendString(key, s string) { d.Append(key, String(s)) }

func (d *Document) AppendBoolean(key string, b bool) { d.Append(key, Boolean(b)) }

// AppendSection adds an @name marker.
func (d *Document) AppendSection(name string) { d.Append(name, Section()) }

// AppendArray adds the array produced by a builder.
func (d *Document) AppendArray(key string, a Arrayer) { d.Append(key, a.Finish()) }

// Lookup returns the first value stored under key if it has type t.
func (d *Document) Lookup(key string, t Type) (Value, bool) {
	for _, p := range d.pairs {
		if p.Key != key {
			continue
		}
		if p.Value.typ != t {
			return Value{}, false
		}
		return p.Value, true
	}
	return Value{}, false
}

func (d *Document) GetInteger(key string) (int64, bool) {
	v, ok := d.Lookup(key, TypeInteger)
	return v.i, ok
}

func (d *Document) GetFloat(key string) (float64, bool) {
	v, ok := d.Lookup(key, TypeFloat)
	return v.f, ok
}

func (d *Document) GetString(key string) (string, bool) {
	v, ok := d.Lookup(key, TypeString)
	return v.s, ok
}

func (d *Document) GetBoolean(key string) (bool, bool) {
	v, ok := d.Lookup(key, TypeBoolean)
	return v.b, ok
}

func (d *Document) GetArray(key string) ([]Value, bool) {
	v, ok := d.Lookup(key, TypeArray)
	if !ok {
		return nil, false
	}
	return v.AsArray()
}

// HasSection reports whether an @name marker is present.
func (d *Document) HasSection(name string) bool {
	_, ok := d.Lookup(name, TypeSection)
	return ok
}

func (d *Document) Len() int { return len(d.pairs) }

// Pairs returns a copy of all pairs in insertion order.
func (d *Document) Pairs() []Pair {
	cp := make([]Pair, len(d.pairs))
	copy(cp, d.pairs)
	return cp
}

// All iterates over the pairs in insertion order.
func (d *Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, p := range d.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Equal reports whether both documents hold the same pairs in the same order.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.pairs) != len(o.pairs) {
		return false
	}
	for i := range d.pairs {
		if d.pairs[i].Key != o.pairs[i].Key || !d.pairs[i].Value.Equal(o.pairs[i].Value) {
			return false
		}
	}
	return true
}
