package route

import (
	"fmt"
	"strings"

	"github.com/typedpath/route/decode"
)

// Parse builds a pattern from its literal form:
//
//	/home/:int/
//	/contact/*/:bool
//	/product/:string?section=:int&lang=en
//	/files/**
//
// ':'-prefixed names select decoders: the built-ins by name, then the extra
// decoders passed here. '*' captures one segment as a string, '**' captures
// the remaining target and must end the path. A trailing '/' requires the
// request to carry one too; without it the path must end after the last
// segment.
func Parse(pattern string, extra ...decode.Decoder) (Pattern, error) {
	pathRaw, queryRaw, hasQuery := strings.Cut(pattern, "?")
	if !strings.HasPrefix(pathRaw, "/") {
		return Pattern{}, fmt.Errorf("pattern %q: missing leading slash", pattern)
	}
	parts := strings.Split(pathRaw, "/")[1:]
	var path []Segment
	for i, part := range parts {
		last := i == len(parts)-1
		switch {
		case part == "" && last:
			path = append(path, Slash())
		case part == "":
			return Pattern{}, fmt.Errorf("pattern %q: empty segment", pattern)
		case part == "**":
			if !last {
				return Pattern{}, fmt.Errorf("pattern %q: ** must be the final segment", pattern)
			}
			path = append(path, Splat())
		case part == "*":
			path = append(path, Wildcard())
		case strings.HasPrefix(part, ":"):
			d, err := decoderNamed(part[1:], extra)
			if err != nil {
				return Pattern{}, fmt.Errorf("pattern %q: %w", pattern, err)
			}
			path = append(path, Capture(d))
		default:
			path = append(path, Exact(part))
		}
	}
	if !terminated(path) {
		path = append(path, End())
	}
	var query []Clause
	if hasQuery {
		for _, pair := range strings.Split(queryRaw, "&") {
			name, value, ok := strings.Cut(pair, "=")
			if !ok || name == "" {
				return Pattern{}, fmt.Errorf("pattern %q: malformed query pair %q", pattern, pair)
			}
			if rest, ok := strings.CutPrefix(value, ":"); ok {
				d, err := decoderNamed(rest, extra)
				if err != nil {
					return Pattern{}, fmt.Errorf("pattern %q: %w", pattern, err)
				}
				query = append(query, QCapture(name, d))
				continue
			}
			query = append(query, QExact(name, value))
		}
	}
	return NewPattern(path, query...)
}

func terminated(path []Segment) bool {
	if len(path) == 0 {
		return false
	}
	switch path[len(path)-1].kind {
	case segEnd, segSlash, segSplat:
		return true
	}
	return false
}

func decoderNamed(name string, extra []decode.Decoder) (decode.Decoder, error) {
	switch name {
	case "int":
		return decode.Int, nil
	case "int32":
		return decode.Int32, nil
	case "int64":
		return decode.Int64, nil
	case "float":
		return decode.Float, nil
	case "bool":
		return decode.Bool, nil
	case "string":
		return decode.String, nil
	}
	for _, d := range extra {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown decoder %q", name)
}
