// Package item defines the value stored by every container in this module.
//
// An Item is one of three kinds:
//
//   - Number (float64)
//   - String (string)
//   - Bool   (bool)
//
// The set is closed: only types in this package implement Item.
package item

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUnsupportedType = errors.New("unsupported item type")

type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Item is a wrapped primitive value.
type Item interface {
	Kind() Kind
	// Value unwraps the payload as float64, string or bool.
	Value() any
	String() string

	sealed()
}

type Number float64

type String string

type Bool bool

func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Bool) Kind() Kind   { return KindBool }

func (n Number) Value() any { return float64(n) }
func (s String) Value() any { return string(s) }
func (b Bool) Value() any   { return bool(b) }

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (s String) String() string { return string(s) }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }

func (Number) sealed() {}
func (String) sealed() {}
func (Bool) sealed()   {}

// New wraps a Go value as an Item. Integers and floats become Number.
func New(v any) (Item, error) {
	switch x := v.(type) {
	case Item:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case int:
		return Number(x), nil
	case int8:
		return Number(x), nil
	case int16:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint:
		return Number(x), nil
	case uint8:
		return Number(x), nil
	case uint16:
		return Number(x), nil
	case uint32:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	}
	return nil, fmt.Errorf("wrap %T: %w", v, ErrUnsupportedType)
}

// Match calls the handler for the kind of it and returns its result.
// All three handlers are required, so adding a kind breaks every call site.
func Match[R any](it Item, onNumber func(float64) R, onString func(string) R, onBool func(bool) R) R {
	switch x := it.(type) {
	case Number:
		return onNumber(float64(x))
	case String:
		return onString(string(x))
	case Bool:
		return onBool(bool(x))
	}
	panic("item: Match on nil Item")
}

// Equal reports whether a and b hold the same kind and payload.
func Equal(a, b Item) bool {
	return a == b
}
