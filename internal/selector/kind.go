package selector

import (
	"fmt"
	"strings"
)

// Kind identifies one fragment of a compound selector
type Kind int

// Fragment kinds in required order. The numeric value is the kind's rank.
const (
	Element       Kind = iota + 1 // div
	ID                            // #main
	Class                         // .container
	Attribute                     // [href$=".png"]
	PseudoClass                   // :focus
	PseudoElement                 // ::before
)

// spec describes how a kind is ranked and rendered
type spec struct {
	rank   int
	prefix string
	suffix string
	once   bool // at most one per compound selector
}

var specs = map[Kind]spec{
	Element:       {rank: 1, once: true},
	ID:            {rank: 2, prefix: "#", once: true},
	Class:         {rank: 3, prefix: "."},
	Attribute:     {rank: 4, prefix: "[", suffix: "]"},
	PseudoClass:   {rank: 5, prefix: ":"},
	PseudoElement: {rank: 6, prefix: "::", once: true},
}

// fragmentSpec returns the rank and affixes for kind
func fragmentSpec(kind Kind) (spec, bool) {
	s, ok := specs[kind]
	return s, ok
}

// Render returns value wrapped in the kind's affixes
func (k Kind) Render(value string) string {
	s, ok := fragmentSpec(k)
	if !ok {
		return value
	}
	return s.prefix + value + s.suffix
}

// Rank returns the ordering rank of k, or 0 for an unknown kind
func (k Kind) Rank() int {
	return specs[k].rank
}

// Repeatable reports whether k may appear more than once
func (k Kind) Repeatable() bool {
	s, ok := fragmentSpec(k)
	return ok && !s.once
}

func (k Kind) String() string {
	switch k {
	case Element:
		return "element"
	case ID:
		return "id"
	case Class:
		return "class"
	case Attribute:
		return "attribute"
	case PseudoClass:
		return "pseudo-class"
	case PseudoElement:
		return "pseudo-element"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a kind name as written in recipe files to a Kind.
// Matching is case-insensitive and accepts the common short forms.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "element", "tag":
		return Element, nil
	case "id":
		return ID, nil
	case "class":
		return Class, nil
	case "attr", "attribute":
		return Attribute, nil
	case "pseudo-class", "pseudoclass", "pseudo_class":
		return PseudoClass, nil
	case "pseudo-element", "pseudoelement", "pseudo_element":
		return PseudoElement, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
