package cssel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const layoutRecipe = `
selectors:
  - name: main
    parts:
      - {kind: element, value: div}
      - {kind: id, value: main}
  - name: data
    parts:
      - {kind: element, value: table}
      - {kind: id, value: data}
  - name: pair
    combine: {left: main, combinator: "+", right: data}
  - name: image-link
    parts:
      - {kind: element, value: a}
      - {kind: attr, value: 'href$=".png"'}
      - {kind: pseudoClass, value: focus}
`

const brokenRecipe = `
selectors:
  - name: twice
    parts:
      - {kind: element, value: div}
      - {kind: id, value: main}
      - {kind: id, value: other}
  - name: backwards
    parts:
      - {kind: id, value: x}
      - {kind: element, value: div}
  - name: bogus
    parts:
      - {kind: combinator, value: ">"}
  - name: dangling
    combine: {left: nope, combinator: ">", right: twice}
  - name: both
    parts:
      - {kind: class, value: a}
    combine: {left: a, combinator: ">", right: b}
  - parts:
      - {kind: class, value: anonymous}
`

func writeRecipe(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRecipe(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "layout.yaml", layoutRecipe)

	recipe, err := LoadRecipe(path)
	require.NoError(t, err)
	assert.Equal(t, path, recipe.Path)
	require.Len(t, recipe.Selectors, 4)

	assert.Equal(t, "main", recipe.Selectors[0].Name)
	assert.Equal(t, []PartSpec{{Kind: "element", Value: "div"}, {Kind: "id", Value: "main"}}, recipe.Selectors[0].Parts)
	assert.Equal(t, &CombineSpec{Left: "main", Combinator: "+", Right: "data"}, recipe.Selectors[2].Combine)
	assert.Equal(t, `href$=".png"`, recipe.Selectors[3].Parts[1].Value)
}

func TestLoadRecipeMalformed(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "bad.yaml", "selectors: [unclosed")
	_, err := LoadRecipe(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load recipe")
}

func TestBuildRecipe(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "layout.yaml", layoutRecipe)
	recipe, err := LoadRecipe(path)
	require.NoError(t, err)

	built, issues, err := BuildRecipe(recipe, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Empty(t, issues)

	got := make(map[string]string)
	for _, sel := range built {
		got[sel.Name] = sel.Text
	}
	assert.Equal(t, map[string]string{
		"main":       "div#main",
		"data":       "table#data",
		"pair":       "div#main + table#data",
		"image-link": `a[href$=".png"]:focus`,
	}, got)

	assert.True(t, built[2].Combined)
	assert.Equal(t, Specificity{2, 0, 2}, built[2].Specificity)
}

func TestBuildRecipeIssues(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "broken.yaml", brokenRecipe)
	recipe, err := LoadRecipe(path)
	require.NoError(t, err)

	built, issues, err := BuildRecipe(recipe, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCardinality)
	assert.ErrorIs(t, err, ErrOrdering)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Empty(t, built)

	require.Len(t, issues, 6)
	byIndex := make(map[int]Issue)
	for _, issue := range issues {
		assert.Equal(t, SeverityError, issue.Severity)
		assert.Equal(t, IssueSource, issue.Source)
		byIndex[issue.Pos.Index] = issue
	}

	assert.Equal(t, 3, byIndex[1].Pos.Part)
	assert.Contains(t, byIndex[1].Text, "may appear only once")
	assert.Equal(t, 2, byIndex[2].Pos.Part)
	assert.Contains(t, byIndex[2].Text, "must appear in order")
	assert.Equal(t, 1, byIndex[3].Pos.Part)
	assert.Contains(t, byIndex[4].Text, `unknown selector "nope"`)
	assert.Contains(t, byIndex[5].Text, "either parts or combine")
	assert.Contains(t, byIndex[6].Text, "#6 has no name")
}

func TestBuildRecipeDuplicateName(t *testing.T) {
	recipe := &Recipe{
		Path: "dup.yaml",
		Selectors: []SelectorSpec{
			{Name: "x", Parts: []PartSpec{{Kind: "class", Value: "a"}}},
			{Name: "x", Parts: []PartSpec{{Kind: "class", Value: "b"}}},
			{Name: "y", Combine: &CombineSpec{Left: "x", Combinator: ">", Right: "x"}},
		},
	}

	built, issues, err := BuildRecipe(recipe, nil)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	require.Len(t, built, 3)
	assert.Equal(t, ".b > .b", built[2].Text)
}

func TestBuildRecipeMissingCombinator(t *testing.T) {
	recipe := &Recipe{
		Path: "r.yaml",
		Selectors: []SelectorSpec{
			{Name: "a", Parts: []PartSpec{{Kind: "tag", Value: "a"}}},
			{Name: "b", Combine: &CombineSpec{Left: "a", Right: "a"}},
		},
	}

	_, issues, err := BuildRecipe(recipe, nil)
	require.Error(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Text, "has no combinator")
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeRecipe(t, dir, "layout.yaml", layoutRecipe)
	writeRecipe(t, dir, "nested/broken.yaml", brokenRecipe)
	writeRecipe(t, dir, "notes.txt", "ignored")

	config := BuildConfig{Paths: []string{filepath.Join(dir, "**/*.yaml")}}
	result, err := Build(config, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Len(t, result.Selectors, 4)
	assert.Equal(t, 6, result.ErrorCount)
	assert.Equal(t, 0, result.WarningCount)
	assert.Empty(t, result.Warnings)
}

func TestBuildStrict(t *testing.T) {
	dir := t.TempDir()
	writeRecipe(t, dir, "broken.yaml", brokenRecipe)
	writeRecipe(t, dir, "bad.yaml", "selectors: [unclosed")

	config := BuildConfig{Paths: []string{filepath.Join(dir, "*.yaml")}, Strict: true}
	result, err := Build(config, zap.NewNop())
	require.Error(t, err)
	require.NotNil(t, result)
	assert.ErrorIs(t, err, ErrOrdering)
	assert.Contains(t, err.Error(), "build failed")
	assert.Len(t, result.Warnings, 1)
}

func TestBuildStrictClean(t *testing.T) {
	dir := t.TempDir()
	writeRecipe(t, dir, "layout.yaml", layoutRecipe)

	result, err := Build(BuildConfig{Paths: []string{filepath.Join(dir, "*.yaml")}, Strict: true}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Selectors, 4)
}
