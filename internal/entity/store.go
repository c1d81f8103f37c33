package entity

// ID names an object in a Store. The zero ID never resolves.
type ID struct {
	Index uint32
	Gen   uint32
}

// Valid reports whether id was handed out by a Store.
func (id ID) Valid() bool { return id.Gen != 0 }

type slot struct {
	obj *Object
	gen uint32
}

// Store owns the live objects. Objects keep insertion order in the active list;
// slots are recycled with a bumped generation so stale IDs resolve to nil.
type Store struct {
	slots  []slot
	free   []uint32
	active []*Object
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends o to the active list and returns its ID.
func (s *Store) Add(o *Object) ID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.obj = o
	o.id = ID{Index: idx, Gen: sl.gen}
	s.active = append(s.active, o)
	return o.id
}

// Get resolves id, returning nil when the object has been removed.
func (s *Store) Get(id ID) *Object {
	if !id.Valid() || int(id.Index) >= len(s.slots) {
		return nil
	}
	sl := s.slots[id.Index]
	if sl.gen != id.Gen {
		return nil
	}
	return sl.obj
}

// Objects returns the active list in insertion order. The slice is only valid until
// the next Add or removal.
func (s *Store) Objects() []*Object {
	return s.active
}

// Len returns the number of active objects.
func (s *Store) Len() int {
	return len(s.active)
}

// Remove drops the object with id. It reports false for stale IDs.
func (s *Store) Remove(id ID) bool {
	o := s.Get(id)
	if o == nil {
		return false
	}
	s.RemoveIf(func(c *Object) bool { return c == o })
	return true
}

// RemoveIf drops every object matching pred, compacting the active list in place,
// and returns the removed objects in their former order.
func (s *Store) RemoveIf(pred func(*Object) bool) []*Object {
	var removed []*Object
	kept := 0
	for _, o := range s.active {
		if pred(o) {
			removed = append(removed, o)
			s.release(o.id)
			continue
		}
		s.active[kept] = o
		kept++
	}
	for i := kept; i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = s.active[:kept]
	return removed
}

func (s *Store) release(id ID) {
	sl := &s.slots[id.Index]
	sl.obj = nil
	sl.gen++
	s.free = append(s.free, id.Index)
}
