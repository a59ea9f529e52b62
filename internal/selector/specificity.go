package selector

import "fmt"

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C].
type Specificity [3]int

// Less returns true if s < other (strictly)
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

// Add returns the component-wise sum of s and other
func (s Specificity) Add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

func (s Specificity) String() string {
	return fmt.Sprintf("%d,%d,%d", s[0], s[1], s[2])
}

// weight returns the specificity contributed by a single fragment
func weight(kind Kind, value string) Specificity {
	switch kind {
	case ID:
		return Specificity{1, 0, 0}
	case Class, Attribute, PseudoClass:
		return Specificity{0, 1, 0}
	case Element:
		if value == "*" {
			return Specificity{}
		}
		return Specificity{0, 0, 1}
	case PseudoElement:
		return Specificity{0, 0, 1}
	}
	return Specificity{}
}
