package depot

import (
	"iter"
	"slices"

	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/willf/bitset"
)

// Cursor walks the entities matched by a query, one at a time.
//
// A cursor is single-pass: once Next reports false it stays exhausted.
// It reads live store state at each step and takes no snapshot, so adding or
// removing components or entities while a cursor is in flight is undefined.
// Lock the world and use the Enqueue operations instead. Abandoning a cursor
// early has no side effects.
type Cursor struct {
	world  *world
	names  []string
	stores []*componentStore

	// driver supplies candidates; nil means every live entity.
	driver   *SparseSet
	match    func(*bitset.BitSet) bool
	position int

	// rows backs current and is overwritten by every call to Next.
	rows    []int
	current Match
	done    bool
}

// Match is one query result: the entity and its row in each queried
// component's columns, in query order.
//
// A Match handed out by a cursor shares the cursor's row buffer and is only
// valid until the next call to Next. Use Clone to keep one.
type Match struct {
	Entity EntityID
	names  []string
	rows   []int
}

func newCursor(w *world, names []string, stores []*componentStore, driver *SparseSet, match func(*bitset.BitSet) bool) *Cursor {
	return &Cursor{
		world:  w,
		names:  names,
		stores: stores,
		driver: driver,
		match:  match,
		rows:   make([]int, len(stores)),
	}
}

func exhaustedCursor() *Cursor {
	return &Cursor{done: true}
}

// Next advances to the next matching entity.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	for {
		id, ok := c.candidate()
		if !ok {
			c.done = true
			c.current = Match{}
			return false
		}
		entityMask := c.world.entities.masks[id]
		if entityMask == nil || !c.match(entityMask) {
			continue
		}
		for i, store := range c.stores {
			c.rows[i] = store.set.Index(id)
		}
		c.current = Match{Entity: id, names: c.names, rows: c.rows}
		return true
	}
}

func (c *Cursor) candidate() (EntityID, bool) {
	if c.driver != nil {
		dense := c.driver.Dense()
		if c.position >= len(dense) {
			return 0, false
		}
		id := dense[c.position]
		c.position++
		return id, true
	}
	em := c.world.entities
	if c.position >= int(em.nextID) {
		return 0, false
	}
	id := EntityID(c.position)
	c.position++
	return id, true
}

// All yields the remaining matches. It consumes the cursor. Each yielded
// Match is valid until the loop advances.
func (c *Cursor) All() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice of independent matches.
func (c *Cursor) Collect() []Match {
	return iter_util.Collect(c.cloned())
}

func (c *Cursor) cloned() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m := range c.All() {
			if !yield(m.Clone()) {
				return
			}
		}
	}
}

// Match returns the current match, or the zero Match when the cursor is not
// positioned on one.
func (c *Cursor) Match() Match {
	return c.current
}

func (c *Cursor) Entity() EntityID {
	return c.current.Entity
}

// Row returns the current entity's row in component's columns.
func (c *Cursor) Row(component string) (int, bool) {
	return c.current.Row(component)
}

// Done reports whether the cursor is exhausted.
func (c *Cursor) Done() bool {
	return c.done
}

// Row returns the row for component, if it was part of the query.
func (m Match) Row(component string) (int, bool) {
	for i, name := range m.names {
		if name == component {
			return m.rows[i], true
		}
	}
	return tombstone, false
}

// Clone returns a copy of m that no longer shares the cursor's buffer.
func (m Match) Clone() Match {
	return Match{Entity: m.Entity, names: m.names, rows: slices.Clone(m.rows)}
}

// At returns the row for the i-th queried component.
func (m Match) At(i int) int {
	return m.rows[i]
}

func (m Match) Len() int {
	return len(m.rows)
}

// Rows returns the match as a component name to row map.
func (m Match) Rows() map[string]int {
	rows := make(map[string]int, len(m.rows))
	for i, name := range m.names {
		rows[name] = m.rows[i]
	}
	return rows
}
