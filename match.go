package route

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Match walks the method and request target through the trie and returns the
// matched handler's result. The boolean reports whether any route matched;
// decoder failures, unsatisfied query clauses and malformed targets all
// reduce to a false result, never to an error.
func (r *Router) Match(method, target string) (any, bool) {
	pathRaw, queryRaw, _ := strings.Cut(target, "?")
	if !strings.HasPrefix(pathRaw, "/") {
		return nil, false
	}
	m := &matchState{
		method:   MethodOf(method),
		queryRaw: queryRaw,
	}
	return r.root.walk(m, strings.Split(pathRaw, "/")[1:], nil)
}

type matchState struct {
	method   Method
	queryRaw string

	params    map[string]string
	parsed    bool
	malformed bool
}

// query parses the raw query once per match. Duplicate parameter names keep
// their first value. An empty clause or a clause without '=' marks the whole
// query malformed.
func (m *matchState) query() (map[string]string, bool) {
	if m.parsed {
		return m.params, !m.malformed
	}
	m.parsed = true
	params := make(map[string]string)
	if m.queryRaw == "" {
		m.params = params
		return params, true
	}
	for _, pair := range strings.Split(m.queryRaw, "&") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			m.malformed = true
			return nil, false
		}
		if _, ok := params[name]; !ok {
			params[name] = value
		}
	}
	m.params = params
	return params, true
}

// walk advances the segment cursor through the node's edges in preference
// order: literal, decoders, slash, wildcard, splat. A matching literal edge
// is definitive for its segment; the other alternatives are retried when a
// chosen edge leads to no terminal, with the captures of the abandoned
// branch discarded.
func (n *node) walk(m *matchState, segs []string, caps []any) (any, bool) {
	if len(segs) == 0 {
		return n.resolve(m, caps, false)
	}
	head := segs[0]
	if child, ok := n.childs[head]; ok {
		return child.walk(m, segs[1:], caps)
	}
	for _, e := range n.decoders {
		v, ok := e.dec.Decode(head)
		if !ok {
			continue
		}
		if res, ok := e.child.walk(m, segs[1:], push(caps, v)); ok {
			return res, true
		}
	}
	if n.slash != nil && len(segs) == 1 && head == "" {
		if res, ok := n.slash.resolve(m, caps, false); ok {
			return res, true
		}
	}
	if n.wildcard != nil && head != "" {
		if res, ok := n.wildcard.walk(m, segs[1:], push(caps, head)); ok {
			return res, true
		}
	}
	if n.splat != nil {
		rest := strings.Join(segs, "/")
		if m.queryRaw != "" {
			rest += "?" + m.queryRaw
		}
		return n.splat.resolve(m, push(caps, rest), true)
	}
	return nil, false
}

// push appends a capture without sharing the backing array between
// backtracking branches.
func push(caps []any, v any) []any {
	return append(slices.Clip(caps), v)
}

// resolve selects a terminal at this node. Candidates are filtered by method
// and their query clauses; among the survivors the one with the most literal
// clauses wins, earlier insertion breaking ties. Terminals reached through a
// splat edge skip query evaluation: the splat capture already absorbed the
// raw query.
func (n *node) resolve(m *matchState, caps []any, splat bool) (any, bool) {
	best := -1
	var bestArgs []any
	for i, t := range n.terminals {
		if !t.method.equal(m.method) {
			continue
		}
		if splat {
			return t.handler.call(caps), true
		}
		qcaps, ok := t.eval(m)
		if !ok {
			continue
		}
		if best == -1 || t.exacts > n.terminals[best].exacts {
			best = i
			bestArgs = append(slices.Clip(caps), qcaps...)
		}
	}
	if best == -1 {
		return nil, false
	}
	return n.terminals[best].handler.call(bestArgs), true
}

// eval checks the terminal's query clauses against the request query and
// collects the decoded captures in clause declaration order.
func (t terminal) eval(m *matchState) ([]any, bool) {
	if m.queryRaw == "" && len(t.clauses) == 0 {
		return nil, true
	}
	params, ok := m.query()
	if !ok {
		return nil, false
	}
	var qcaps []any
	for _, c := range t.clauses {
		value, ok := params[c.name]
		if !ok {
			return nil, false
		}
		if c.dec == nil {
			if value != c.value {
				return nil, false
			}
			continue
		}
		v, ok := c.dec.Decode(value)
		if !ok {
			return nil, false
		}
		qcaps = append(qcaps, v)
	}
	return qcaps, true
}
