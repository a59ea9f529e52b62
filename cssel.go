// Package cssel builds CSS selector strings from pre-tokenized fragments.
//
// Fragments are added in rank order: element, id, class, attribute,
// pseudo-class, pseudo-element. Element, id and pseudo-element may appear only
// once per compound selector.
//
// # Building
//
//	sel := cssel.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
//	if err := sel.Err(); err != nil {
//		return err
//	}
//	fmt.Println(sel) // a[href$=".png"]:focus
//
// A chained call that breaks the rules records an error (see ErrOrdering and
// ErrCardinality) and leaves the selector as it was before the call.
//
// # Combining
//
//	row := cssel.Combine(cssel.Element("div").ID("main"), "+", cssel.Element("table").ID("data"))
//	fmt.Println(row) // div#main + table#data
//
// The combined selector is finished text; adding fragments to it fails with
// ErrCombined.
//
// # Recipes
//
// Build reads YAML recipe files describing named selectors and renders them
// all, collecting rule violations as issues. The cssel CLI wraps it:
//
//	go install github.com/yacobolo/cssel/cmd/cssel@latest
package cssel

import "github.com/yacobolo/cssel/internal/selector"

// Builder accumulates selector fragments. See the selector rules in the package doc.
type Builder = selector.Builder

// Kind identifies a selector fragment kind
type Kind = selector.Kind

// Specificity is the [A,B,C] CSS specificity of a selector
type Specificity = selector.Specificity

// FragmentError reports a rejected fragment
type FragmentError = selector.FragmentError

// Fragment kinds in required order
const (
	KindElement       = selector.Element
	KindID            = selector.ID
	KindClass         = selector.Class
	KindAttribute     = selector.Attribute
	KindPseudoClass   = selector.PseudoClass
	KindPseudoElement = selector.PseudoElement
)

// Errors reported by Builder
var (
	ErrOrdering    = selector.ErrOrdering
	ErrCardinality = selector.ErrCardinality
	ErrCombined    = selector.ErrCombined
	ErrUnknownKind = selector.ErrUnknownKind
)

// New returns an empty builder
func New() *Builder { return selector.New() }

// Element starts a selector with a type selector such as "div"
func Element(value string) *Builder { return selector.New().Element(value) }

// ID starts a selector with "#value"
func ID(value string) *Builder { return selector.New().ID(value) }

// Class starts a selector with ".value"
func Class(value string) *Builder { return selector.New().Class(value) }

// Attr starts a selector with "[value]"
func Attr(value string) *Builder { return selector.New().Attr(value) }

// PseudoClass starts a selector with ":value"
func PseudoClass(value string) *Builder { return selector.New().PseudoClass(value) }

// PseudoElement starts a selector with "::value"
func PseudoElement(value string) *Builder { return selector.New().PseudoElement(value) }

// Combine joins two finished selectors as "a <combinator> b"
func Combine(a *Builder, combinator string, b *Builder) *Builder {
	return selector.Combine(a, combinator, b)
}

// ParseKind maps a kind name such as "class" or "pseudoElement" to a Kind
func ParseKind(name string) (Kind, error) { return selector.ParseKind(name) }
