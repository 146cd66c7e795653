package intset

// SubsetOf reports whether every member of s is also a member of
// other. An empty set is a subset of any set.
func (s *IntSet) SubsetOf(other *IntSet) bool {
	for i := 0; i < s.used; i++ {
		if !other.Has(s.buf[i]) {
			return false
		}
	}
	return true
}

// Union returns a new set holding every member of either operand: s's
// members first in their stored order, then other's members that were
// missing, in other's order. Neither operand changes.
func (s *IntSet) Union(other *IntSet) *IntSet {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

// Intersect returns a new set holding the members common to both
// operands, ordered as a subsequence of s. Neither operand changes.
func (s *IntSet) Intersect(other *IntSet) *IntSet {
	result := s.Clone()
	for i := 0; i < s.used; i++ {
		if !other.Has(s.buf[i]) {
			result.Remove(s.buf[i])
		}
	}
	return result
}

// Subtract returns a new set holding s's members that are not in
// other, ordered as a subsequence of s. Neither operand changes.
func (s *IntSet) Subtract(other *IntSet) *IntSet {
	result := s.Clone()
	for i := 0; i < other.used; i++ {
		result.Remove(other.buf[i])
	}
	return result
}

// Equal reports set-theoretic equality: equal size and mutual
// inclusion. Insertion order and capacity play no part.
func Equal(a, b *IntSet) bool {
	if a.Len() != b.Len() {
		return false
	}
	return a.SubsetOf(b) && b.SubsetOf(a)
}
