// SPDX-License-Identifier: MIT

package core

// codeSet is an insertion-ordered set of member codes.
// Adding an existing code keeps its original position.
type codeSet struct {
	order []string
	index map[string]struct{}
}

func newCodeSet() *codeSet {
	return &codeSet{index: make(map[string]struct{})}
}

// add inserts code and reports whether it was new.
func (s *codeSet) add(code string) bool {
	if _, ok := s.index[code]; ok {
		return false
	}
	s.index[code] = struct{}{}
	s.order = append(s.order, code)

	return true
}

func (s *codeSet) has(code string) bool {
	_, ok := s.index[code]
	return ok
}

func (s *codeSet) len() int { return len(s.order) }

// codes returns a copy of the members in insertion order, or nil when empty.
func (s *codeSet) codes() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}
