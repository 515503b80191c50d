package decode

import (
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"
)

// Decoder converts one token of a request target into a typed value.
// Decoders are compared by identity: two decoders built by the same New call
// are the same trie edge, two decoders that merely share a name are not.
type Decoder interface {
	// Name is informational, and resolves the decoder in parsed patterns.
	Name() string
	// Decode parses the token. ok is false when the token is malformed.
	Decode(token string) (value any, ok bool)
	// Output is the Go type produced by Decode.
	Output() reflect.Type

	rank() int
}

// Compare orders decoders by matching preference: int before int32 before
// int64 before float before bool before string, user decoders after the
// built-ins in construction order.
func Compare(a, b Decoder) int {
	return a.rank() - b.rank()
}

// Typed is a Decoder producing values of type T.
type Typed[T any] struct {
	name  string
	parse func(string) (T, bool)
	order int
}

// New builds a user decoder. The returned value is the decoder's identity.
func New[T any](name string, parse func(string) (T, bool)) *Typed[T] {
	return &Typed[T]{name: name, parse: parse, order: lastBuiltin + int(userOrder.Add(1))}
}

var userOrder atomic.Int64

func (t *Typed[T]) Name() string { return t.name }

func (t *Typed[T]) Decode(token string) (any, bool) {
	v, ok := t.parse(token)
	if !ok {
		return nil, false
	}
	return v, true
}

func (t *Typed[T]) Output() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (t *Typed[T]) rank() int { return t.order }

const lastBuiltin = 5

var (
	Int    = &Typed[int]{name: "int", parse: parseInt, order: 0}
	Int32  = &Typed[int32]{name: "int32", parse: parseInt32, order: 1}
	Int64  = &Typed[int64]{name: "int64", parse: parseInt64, order: 2}
	Float  = &Typed[float64]{name: "float", parse: parseFloat, order: 3}
	Bool   = &Typed[bool]{name: "bool", parse: parseBool, order: 4}
	String = &Typed[string]{name: "string", parse: parseString, order: 5}
)

// parseInt accepts signed base-10 digits. A leading '+' is rejected, leading
// zeros are not. Overflow fails.
func parseInt(s string) (int, bool) {
	if strings.HasPrefix(s, "+") {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	return int(v), err == nil
}

func parseInt32(s string) (int32, bool) {
	if strings.HasPrefix(s, "+") {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err == nil
}

func parseInt64(s string) (int64, bool) {
	if strings.HasPrefix(s, "+") {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// parseBool is strict: only the lowercase literals true and false.
func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func parseString(s string) (string, bool) {
	return s, s != ""
}
