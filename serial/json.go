// Package serial converts values to and from JSON text.
//
// Deserialization goes through an intermediate map: the text is parsed into a
// map[string]any and each key is then copied onto the target by name, using
// the `json` struct tags.
package serial

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ErrParse matches any *ParseError via errors.Is
var ErrParse = errors.New("malformed JSON")

// ParseError reports text that could not be parsed into a mapping
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) true for every ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Serialize encodes v as JSON. Map keys are emitted in sorted order and
// struct fields in declaration order.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return string(data), nil
}

// Deserialize parses text into a new T
func Deserialize[T any](text string) (T, error) {
	var out T
	if err := DeserializeInto(&out, text); err != nil {
		return out, err
	}
	return out, nil
}

// DeserializeInto parses text and copies each key onto target, which must be
// a non-nil pointer to a struct or map. Keys without a matching field are ignored.
func DeserializeInto(target any, text string) error {
	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return &ParseError{Err: err}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("deserialize: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return fmt.Errorf("deserialize: %w", err)
	}
	return nil
}
