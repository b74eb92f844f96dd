package depot

import (
	"github.com/willf/bitset"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []string
}

type query struct {
	root QueryNode
}

// matcher is a QueryNode with its component names resolved to a mask.
type matcher struct {
	op       Operation
	mask     *bitset.BitSet
	children []*matcher
	never    bool
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []string) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

func (n *compositeNode) compile(reg ComponentRegistry) (*matcher, error) {
	m := &matcher{
		op:       n.op,
		mask:     bitset.New(uint(reg.Len())),
		children: make([]*matcher, 0, len(n.children)),
	}
	for _, name := range n.components {
		id, err := reg.ID(name)
		if err != nil {
			return nil, err
		}
		m.mask.Set(uint(id))
	}
	for _, child := range n.children {
		cm, err := child.compile(reg)
		if err != nil {
			return nil, err
		}
		m.children = append(m.children, cm)
	}
	return m, nil
}

func (m *matcher) evaluate(entity *bitset.BitSet) bool {
	if m.never {
		return false
	}
	switch m.op {
	case OpAnd:
		if !entity.IsSuperSet(m.mask) {
			return false
		}
		for _, child := range m.children {
			if !child.evaluate(entity) {
				return false
			}
		}
		return true

	case OpOr:
		if entity.IntersectionCardinality(m.mask) > 0 {
			return true
		}
		for _, child := range m.children {
			if child.evaluate(entity) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range m.children {
			if child.evaluate(entity) {
				return false
			}
		}
		return entity.IntersectionCardinality(m.mask) == 0
	}
	return false
}

func (q *query) And(items ...any) QueryNode {
	return q.node(OpAnd, items)
}

func (q *query) Or(items ...any) QueryNode {
	return q.node(OpOr, items)
}

func (q *query) Not(items ...any) QueryNode {
	return q.node(OpNot, items)
}

// node builds a composite. The first node built becomes the query's root,
// and a node wrapping the current root takes its place.
func (q *query) node(op Operation, items []any) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(op, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	for _, child := range children {
		if child == q.root {
			q.root = node
		}
	}
	return node
}

func (q *query) processItems(items ...any) ([]string, []QueryNode) {
	components := make([]string, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case string:
			components = append(components, v)
		case []string:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) compile(reg ComponentRegistry) (*matcher, error) {
	if q.root == nil {
		return &matcher{never: true}, nil
	}
	return q.root.compile(reg)
}

// rootOf unwraps a Query to the node it evaluates.
func rootOf(node QueryNode) QueryNode {
	if q, ok := node.(*query); ok && q.root != nil {
		return rootOf(q.root)
	}
	return node
}
