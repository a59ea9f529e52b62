package cssel

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Recipe is a parsed recipe file
type Recipe struct {
	Path      string
	Selectors []SelectorSpec `koanf:"selectors"`
}

// SelectorSpec declares one named selector, either from parts or by combining
// two selectors declared earlier in the same file
type SelectorSpec struct {
	Name    string       `koanf:"name"`
	Parts   []PartSpec   `koanf:"parts"`
	Combine *CombineSpec `koanf:"combine"`
}

// PartSpec is a single fragment: {kind: class, value: btn}
type PartSpec struct {
	Kind  string `koanf:"kind"`
	Value string `koanf:"value"`
}

// CombineSpec joins two named selectors with a combinator
type CombineSpec struct {
	Left       string `koanf:"left"`
	Combinator string `koanf:"combinator"`
	Right      string `koanf:"right"`
}

// LoadRecipe reads a YAML recipe file
func LoadRecipe(path string) (*Recipe, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load recipe %s: %w", path, err)
	}

	recipe := &Recipe{}
	if err := k.Unmarshal("", recipe); err != nil {
		return nil, fmt.Errorf("decode recipe %s: %w", path, err)
	}
	recipe.Path = path

	return recipe, nil
}
