package catalog

// Store owns a fixed number of book slots. A slot's index is the book's
// identity and never changes; the slot count is set once by New.
//
// Store is not safe for concurrent use. The UI mutates it only from the
// Bubble Tea update loop.
type Store struct {
	limits Limits
	slots  []Book
}

// Row pairs a non-empty book with its slot index.
type Row struct {
	Index int
	Book  Book
}

// New allocates a store sized by limits.Capacity. Invalid limits fall back
// to DefaultLimits.
func New(limits Limits) *Store {
	if err := limits.Validate(); err != nil {
		limits = DefaultLimits()
	}
	return &Store{
		limits: limits,
		slots:  make([]Book, limits.Capacity),
	}
}

// Limits returns the dimensions the store was built with.
func (s *Store) Limits() Limits {
	return s.limits
}

// Len returns the number of slots.
func (s *Store) Len() int {
	return len(s.slots)
}

// Put writes a whole record at index, replacing whatever was stored there.
func (s *Store) Put(index int, b Book) error {
	if err := s.limits.CheckIndex(index); err != nil {
		return err
	}
	s.slots[index] = b
	return nil
}

// Get returns the record stored at index. Empty slots are returned as-is;
// callers check Book.IsEmpty.
func (s *Store) Get(index int) (Book, error) {
	if err := s.limits.CheckIndex(index); err != nil {
		return Book{}, err
	}
	return s.slots[index], nil
}

// Clear zeroes a single slot.
func (s *Store) Clear(index int) error {
	if err := s.limits.CheckIndex(index); err != nil {
		return err
	}
	s.slots[index] = Book{}
	return nil
}

// Reset zeroes every slot.
func (s *Store) Reset() {
	for i := range s.slots {
		s.slots[i] = Book{}
	}
}

// Count returns the number of non-empty slots.
func (s *Store) Count() int {
	n := 0
	for _, b := range s.slots {
		if !b.IsEmpty() {
			n++
		}
	}
	return n
}

// Each calls fn for every non-empty slot in index order.
func (s *Store) Each(fn func(index int, b Book)) {
	for i, b := range s.slots {
		if b.IsEmpty() {
			continue
		}
		fn(i, b)
	}
}

// Rows returns the non-empty slots in index order.
func (s *Store) Rows() []Row {
	rows := make([]Row, 0, s.Count())
	s.Each(func(index int, b Book) {
		rows = append(rows, Row{Index: index, Book: b})
	})
	return rows
}

// SortByPrice reorders slots so non-empty books come first in ascending price
// order, followed by every empty slot. Equal prices keep no particular order.
func (s *Store) SortByPrice() {
	n := len(s.slots)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			a, b := s.slots[i], s.slots[j]
			if a.IsEmpty() || (!b.IsEmpty() && a.Price > b.Price) {
				s.slots[i], s.slots[j] = b, a
			}
		}
	}
}
