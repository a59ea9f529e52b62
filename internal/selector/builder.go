// Package selector assembles compound CSS selectors from pre-tokenized fragments.
//
// Fragments must be added in rank order (element, id, class, attribute,
// pseudo-class, pseudo-element). Element, id and pseudo-element may appear at
// most once. A Builder only concatenates; it does not parse or validate the
// fragment values themselves.
package selector

import (
	"strings"

	"go.uber.org/multierr"
)

// Builder accumulates selector fragments. The zero value is an empty builder.
// A Builder is not safe for concurrent use.
type Builder struct {
	text     strings.Builder
	highest  int          // rank of the last accepted fragment, 0 = none
	counts   map[Kind]int // occurrences per kind
	spec     Specificity
	combined bool  // produced by Combine, holds literal text only
	err      error // first error from a chained call
}

// New returns an empty builder
func New() *Builder {
	return &Builder{}
}

// Add appends a fragment of the given kind. When the fragment would break
// ordering or cardinality rules it returns a *FragmentError and the builder is
// left unchanged.
func (b *Builder) Add(kind Kind, value string) error {
	if err := b.check(kind); err != nil {
		return &FragmentError{Kind: kind, Value: value, Err: err}
	}

	s, _ := fragmentSpec(kind)
	if b.counts == nil {
		b.counts = make(map[Kind]int)
	}
	b.highest = s.rank
	b.counts[kind]++
	b.spec = b.spec.Add(weight(kind, value))

	b.text.WriteString(s.prefix)
	b.text.WriteString(value)
	b.text.WriteString(s.suffix)
	return nil
}

// check validates kind against the current state without mutating it
func (b *Builder) check(kind Kind) error {
	s, ok := fragmentSpec(kind)
	if !ok {
		return ErrUnknownKind
	}
	if b.combined {
		return ErrCombined
	}
	if b.text.Len() > 0 && s.rank < b.highest {
		return ErrOrdering
	}
	if s.once && b.counts[kind] >= 1 {
		return ErrCardinality
	}
	return nil
}

// chain adds a fragment unless an earlier chained call already failed
func (b *Builder) chain(kind Kind, value string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.Add(kind, value); err != nil {
		b.err = err
	}
	return b
}

// Element appends a type selector such as "div"
func (b *Builder) Element(value string) *Builder { return b.chain(Element, value) }

// ID appends "#value"
func (b *Builder) ID(value string) *Builder { return b.chain(ID, value) }

// Class appends ".value"
func (b *Builder) Class(value string) *Builder { return b.chain(Class, value) }

// Attr appends "[value]". The value is used as given, e.g. `href$=".png"`.
func (b *Builder) Attr(value string) *Builder { return b.chain(Attribute, value) }

// PseudoClass appends ":value"
func (b *Builder) PseudoClass(value string) *Builder { return b.chain(PseudoClass, value) }

// PseudoElement appends "::value"
func (b *Builder) PseudoElement(value string) *Builder { return b.chain(PseudoElement, value) }

// Err returns the first error recorded by a chained call.
// Once set, later chained calls are ignored.
func (b *Builder) Err() error {
	return b.err
}

// String returns the rendered selector
func (b *Builder) String() string {
	return b.text.String()
}

// Build returns the rendered selector together with Err
func (b *Builder) Build() (string, error) {
	return b.String(), b.err
}

// Specificity returns the specificity of the fragments added so far.
// For a combined builder it is the sum of both sides.
func (b *Builder) Specificity() Specificity {
	return b.spec
}

// Combined reports whether b was produced by Combine
func (b *Builder) Combined() bool {
	return b.combined
}

// Combine joins two finished selectors with a combinator token (" ", "+", "~", ">").
// The result holds literal text "a <combinator> b" and rejects further fragments.
// Errors recorded on either input are carried over to the result.
func Combine(a *Builder, combinator string, b *Builder) *Builder {
	out := &Builder{
		combined: true,
		spec:     a.Specificity().Add(b.Specificity()),
		err:      multierr.Combine(a.Err(), b.Err()),
	}
	out.text.WriteString(a.String())
	out.text.WriteString(" ")
	out.text.WriteString(combinator)
	out.text.WriteString(" ")
	out.text.WriteString(b.String())
	return out
}
