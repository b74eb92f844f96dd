package depot

const tombstone = -1

// SparseSet maps entity IDs to positions in a packed dense slice.
// Membership, insertion and removal are O(1); removal swaps the last dense
// entry into the vacated slot, so dense order is not stable across removals.
type SparseSet struct {
	sparse []int
	dense  []EntityID
}

func newSparseSet(capacity int) *SparseSet {
	s := &SparseSet{
		sparse: make([]int, capacity),
		dense:  make([]EntityID, 0, capacity),
	}
	for i := range s.sparse {
		s.sparse[i] = tombstone
	}
	return s
}

// Has reports whether id is present.
func (s *SparseSet) Has(id EntityID) bool {
	if id < 0 || int(id) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id]
	return idx != tombstone && idx < len(s.dense) && s.dense[idx] == id
}

// Add appends id to the dense sequence.
func (s *SparseSet) Add(id EntityID) error {
	if id < 0 {
		return EntityNotFoundError{Entity: id}
	}
	if s.Has(id) {
		return ComponentExistsError{Entity: id}
	}
	s.grow(id)
	s.sparse[id] = len(s.dense)
	s.dense = append(s.dense, id)
	return nil
}

// Remove swaps the last dense entry into id's slot and shrinks by one.
func (s *SparseSet) Remove(id EntityID) error {
	if !s.Has(id) {
		return ComponentNotFoundError{Entity: id}
	}
	idx := s.sparse[id]
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.sparse[moved] = idx

	s.dense = s.dense[:last]
	s.sparse[id] = tombstone
	return nil
}

// Index returns id's dense position, or -1 when absent.
func (s *SparseSet) Index(id EntityID) int {
	if !s.Has(id) {
		return tombstone
	}
	return s.sparse[id]
}

// Dense returns the packed ID sequence. The slice is shared; do not modify it.
func (s *SparseSet) Dense() []EntityID {
	return s.dense
}

func (s *SparseSet) Size() int {
	return len(s.dense)
}

func (s *SparseSet) grow(id EntityID) {
	if int(id) < len(s.sparse) {
		return
	}
	oldLen := len(s.sparse)
	newLen := max(oldLen*2, int(id)+1)
	grown := make([]int, newLen)
	copy(grown, s.sparse)
	for i := oldLen; i < newLen; i++ {
		grown[i] = tombstone
	}
	s.sparse = grown
}
