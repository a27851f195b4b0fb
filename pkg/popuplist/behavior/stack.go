package behavior

// StackEntry is a single teardown recorded by Apply.
// Name is the position of the behavior that produced it, for logging.
type StackEntry struct {
	Name     int
	Teardown func()
}

// Stack is a LIFO of teardowns.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty teardown stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push records a teardown. Nil teardowns are ignored.
func (s *Stack) Push(name int, teardown func()) {
	if teardown == nil {
		return
	}
	s.entries = append(s.entries, StackEntry{
		Name:     name,
		Teardown: teardown,
	})
}

// Pop removes and returns the most recent entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Unwind pops and runs every teardown, most recent first.
func (s *Stack) Unwind() {
	for entry := s.Pop(); entry != nil; entry = s.Pop() {
		entry.Teardown()
	}
}
