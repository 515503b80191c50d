package route

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ettle/strcase"
	"github.com/typedpath/route/decode"
)

// Segment is one component of a pattern's path.
type Segment struct {
	kind segKind
	lit  string
	dec  decode.Decoder
}

type segKind uint8

const (
	segExact segKind = iota
	segCapture
	segWildcard
	segSplat
	segSlash
	segEnd
)

// Exact matches a path segment equal to s.
func Exact(s string) Segment { return Segment{kind: segExact, lit: s} }

// Name is Exact with the literal derived from a Go identifier,
// converted to kebab case.
func Name(s string) Segment { return Exact(strcase.ToKebab(s)) }

// Capture matches one segment and decodes it into a handler argument.
func Capture(d decode.Decoder) Segment { return Segment{kind: segCapture, dec: d} }

func Int() Segment { return Capture(decode.Int) }

func Int32() Segment { return Capture(decode.Int32) }

func Int64() Segment { return Capture(decode.Int64) }

func Float() Segment { return Capture(decode.Float) }

func Bool() Segment { return Capture(decode.Bool) }

func String() Segment { return Capture(decode.String) }

// Wildcard matches any single non-empty segment, captured as a string.
func Wildcard() Segment { return Segment{kind: segWildcard} }

// Splat consumes the remaining path and the raw query, captured as one
// string. It terminates the pattern.
func Splat() Segment { return Segment{kind: segSplat} }

// Slash terminates the pattern and requires the request path to end with '/'.
func Slash() Segment { return Segment{kind: segSlash} }

// End terminates the pattern after the last segment, without a trailing '/'.
func End() Segment { return Segment{kind: segEnd} }

// Clause is one query-parameter requirement of a pattern.
type Clause struct {
	name  string
	value string
	dec   decode.Decoder
}

// QExact requires the parameter name to carry exactly the literal value.
func QExact(name, value string) Clause { return Clause{name: name, value: value} }

// QCapture requires the parameter name and decodes its value into a handler
// argument.
func QCapture(name string, d decode.Decoder) Clause { return Clause{name: name, dec: d} }

func QInt(name string) Clause { return QCapture(name, decode.Int) }

func QInt32(name string) Clause { return QCapture(name, decode.Int32) }

func QInt64(name string) Clause { return QCapture(name, decode.Int64) }

func QFloat(name string) Clause { return QCapture(name, decode.Float) }

func QBool(name string) Clause { return QCapture(name, decode.Bool) }

func QString(name string) Clause { return QCapture(name, decode.String) }

// Pattern is the typed shape of a single route: an ordered path and an
// unordered set of query clauses. Patterns are immutable values.
type Pattern struct {
	path  []Segment
	query []Clause
}

// NewPattern validates and builds a pattern. The path must end with exactly
// one terminator (End, Slash or Splat) and contain no other. Query clause
// names must be unique; a Splat pattern takes no clauses since the splat
// capture absorbs the raw query.
func NewPattern(path []Segment, query ...Clause) (Pattern, error) {
	if len(path) == 0 {
		return Pattern{}, fmt.Errorf("pattern: empty path")
	}
	for i, s := range path {
		terminal := s.kind == segEnd || s.kind == segSlash || s.kind == segSplat
		if terminal && i != len(path)-1 {
			return Pattern{}, fmt.Errorf("pattern: terminator before end of path")
		}
		if !terminal && i == len(path)-1 {
			return Pattern{}, fmt.Errorf("pattern: missing terminator")
		}
		if s.kind == segExact && (s.lit == "" || strings.Contains(s.lit, "/")) {
			return Pattern{}, fmt.Errorf("pattern: invalid literal segment %q", s.lit)
		}
	}
	if path[len(path)-1].kind == segSplat && len(query) > 0 {
		return Pattern{}, fmt.Errorf("pattern: splat absorbs the query, clauses are not allowed")
	}
	seen := make(map[string]bool, len(query))
	for _, c := range query {
		if c.name == "" {
			return Pattern{}, fmt.Errorf("pattern: empty query parameter name")
		}
		if seen[c.name] {
			return Pattern{}, fmt.Errorf("pattern: duplicate query parameter %q", c.name)
		}
		seen[c.name] = true
	}
	return Pattern{path: path, query: query}, nil
}

// captureTypes lists the decoder outputs in path-then-query order. This is
// the argument list a handler bound to the pattern must accept.
func (p Pattern) captureTypes() []reflect.Type {
	var types []reflect.Type
	for _, s := range p.path {
		switch s.kind {
		case segCapture:
			types = append(types, s.dec.Output())
		case segWildcard, segSplat:
			types = append(types, reflect.TypeOf(""))
		}
	}
	for _, c := range p.query {
		if c.dec != nil {
			types = append(types, c.dec.Output())
		}
	}
	return types
}
