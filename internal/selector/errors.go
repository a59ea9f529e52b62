package selector

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Builder. Use errors.Is to branch on them.
var (
	// ErrOrdering indicates a fragment was added after a fragment of higher rank.
	ErrOrdering = errors.New("selector parts must appear in order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrCardinality indicates a second element, id or pseudo-element fragment.
	ErrCardinality = errors.New("element, id and pseudo-element may appear only once")

	// ErrCombined indicates a fragment was added to the result of Combine.
	ErrCombined = errors.New("combined selector cannot be extended")

	// ErrUnknownKind indicates a kind name or value outside the known set.
	ErrUnknownKind = errors.New("unknown fragment kind")
)

// FragmentError records which fragment was rejected and why
type FragmentError struct {
	Kind  Kind
	Value string
	Err   error
}

func (e *FragmentError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Value, e.Err)
}

func (e *FragmentError) Unwrap() error {
	return e.Err
}
