package route

import (
	"golang.org/x/exp/slices"

	"github.com/typedpath/route/decode"
)

// node is one decision point of the trie. Routes sharing a path prefix share
// nodes up to the point of divergence.
type node struct {
	childs    map[string]*node
	decoders  []decoderEdge
	wildcard  *node
	splat     *node
	slash     *node
	terminals []terminal
}

// decoderEdge is a typed-capture edge. The slice it lives in is kept sorted
// by decoder preference, so the walk tries int before float before string.
type decoderEdge struct {
	dec   decode.Decoder
	child *node
}

// terminal is one completed route attached to a node, selectable by method
// and query clauses.
type terminal struct {
	method  Method
	clauses []Clause
	handler handler
	exacts  int
}

func (n *node) insert(r Route) {
	cur := n
	for _, s := range r.pattern.path {
		switch s.kind {
		case segExact:
			next, ok := cur.childs[s.lit]
			if !ok {
				if cur.childs == nil {
					cur.childs = make(map[string]*node)
				}
				next = &node{}
				cur.childs[s.lit] = next
			}
			cur = next
		case segCapture:
			cur = cur.decoderChild(s.dec)
		case segWildcard:
			if cur.wildcard == nil {
				cur.wildcard = &node{}
			}
			cur = cur.wildcard
		case segSplat:
			if cur.splat == nil {
				cur.splat = &node{}
			}
			cur = cur.splat
		case segSlash:
			if cur.slash == nil {
				cur.slash = &node{}
			}
			cur = cur.slash
		case segEnd:
		}
	}
	cur.attach(r)
}

func (n *node) decoderChild(d decode.Decoder) *node {
	for _, e := range n.decoders {
		if e.dec == d {
			return e.child
		}
	}
	child := &node{}
	n.decoders = append(n.decoders, decoderEdge{dec: d, child: child})
	slices.SortStableFunc(n.decoders, func(a, b decoderEdge) int {
		return decode.Compare(a.dec, b.dec)
	})
	return child
}

// attach adds the route's terminal. An earlier terminal with the same method
// and clause set is replaced: the last insertion wins.
func (n *node) attach(r Route) {
	t := terminal{method: r.method, clauses: r.pattern.query, handler: r.handler}
	for _, c := range t.clauses {
		if c.dec == nil {
			t.exacts++
		}
	}
	for i, old := range n.terminals {
		if old.method.equal(t.method) && clauseSetEqual(old.clauses, t.clauses) {
			n.terminals[i] = t
			return
		}
	}
	n.terminals = append(n.terminals, t)
}

// clauseSetEqual compares clause sets ignoring declaration order. Clause
// names are unique within a pattern, so equal length plus one-way lookup is
// containment both ways.
func clauseSetEqual(a, b []Clause) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ca := range a {
		found := false
		for _, cb := range b {
			if ca == cb {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
