package route

import (
	"fmt"
	"reflect"
)

// Route pairs a method and a pattern with the handler invoked on a match.
type Route struct {
	method  Method
	pattern Pattern
	handler handler
}

type handler struct {
	fn    reflect.Value
	value any
	plain bool
}

// Handle binds a handler to a pattern. The handler must be a func with a
// single result whose parameter list equals the pattern's captures in
// path-then-query order; the binding is rejected here, not at match time,
// when arity or types disagree. A non-func handler is accepted on
// capture-free patterns and becomes the match result directly.
func Handle(method Method, p Pattern, h any) (Route, error) {
	captures := p.captureTypes()
	t := reflect.TypeOf(h)
	if t == nil || t.Kind() != reflect.Func {
		if len(captures) > 0 {
			return Route{}, fmt.Errorf("route: handler %T is not a func but the pattern captures %d values", h, len(captures))
		}
		return Route{method: method, pattern: p, handler: handler{value: h, plain: true}}, nil
	}
	if t.IsVariadic() {
		return Route{}, fmt.Errorf("route: variadic handler %s", t)
	}
	if t.NumOut() != 1 {
		return Route{}, fmt.Errorf("route: handler %s must return exactly one value", t)
	}
	if t.NumIn() != len(captures) {
		return Route{}, fmt.Errorf("route: handler takes %d arguments, the pattern captures %d", t.NumIn(), len(captures))
	}
	for i, want := range captures {
		if t.In(i) != want {
			return Route{}, fmt.Errorf("route: handler argument %d is %s, capture %d decodes to %s", i, t.In(i), i, want)
		}
	}
	return Route{method: method, pattern: p, handler: handler{fn: reflect.ValueOf(h)}}, nil
}

// Get binds a GET route, the default method.
func Get(p Pattern, h any) (Route, error) { return Handle(MethodGet, p, h) }

func Post(p Pattern, h any) (Route, error) { return Handle(MethodPost, p, h) }

func Put(p Pattern, h any) (Route, error) { return Handle(MethodPut, p, h) }

func Delete(p Pattern, h any) (Route, error) { return Handle(MethodDelete, p, h) }

// HandleAll binds the same pattern and handler under several methods.
func HandleAll(methods []Method, p Pattern, h any) ([]Route, error) {
	routes := make([]Route, 0, len(methods))
	for _, m := range methods {
		r, err := Handle(m, p, h)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (h handler) call(args []any) any {
	if h.plain {
		return h.value
	}
	t := h.fn.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(t.In(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	return h.fn.Call(in)[0].Interface()
}
