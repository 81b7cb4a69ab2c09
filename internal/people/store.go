package people

// Store is the session-scoped ordered collection of records. It is owned by
// exactly one session and accessed from a single goroutine, so there is no
// locking. The sequence only ever holds records built through New.
type Store struct {
	records []Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a validated record to the end of the sequence.
func (s *Store) Append(r Record) {
	s.records = append(s.records, r)
}

// All returns a snapshot of the records in insertion order.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Clear irreversibly empties the store.
func (s *Store) Clear() {
	s.records = nil
}
