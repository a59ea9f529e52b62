package cssel

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssel/internal/selector"
)

// BuildConfig holds recipe build configuration
type BuildConfig struct {
	Paths            []string // ["recipes/**/*.yaml"]
	Strict           bool     // Return an error when any selector fails to build
	PrintSpecificity bool     // Show specificity next to each selector (text output)
	UseColors        bool     // Force colored text output
}

// BuiltSelector is a selector rendered from a recipe
type BuiltSelector struct {
	File        string
	Name        string
	Text        string
	Specificity Specificity
	Combined    bool
}

// BuildResult contains build output and stats
type BuildResult struct {
	FilesScanned int
	FilesSkipped int
	Selectors    []BuiltSelector
	Issues       []Issue
	ErrorCount   int
	WarningCount int
	Warnings     []string // Recipe files that could not be loaded
}

// Build is the main entry point: it renders every selector declared by the
// recipe files matching config.Paths. Rule violations are reported as issues;
// with config.Strict they are also returned as a combined error.
func Build(config BuildConfig, log *zap.Logger) (*BuildResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	result := &BuildResult{}

	// 1. Scan recipe files
	files, stats, err := ScanRecipes(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	log.Debug("Scanned recipe files",
		zap.Int("found", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	// 2. Load and build each file
	var errs error
	for _, path := range files {
		recipe, err := LoadRecipe(path)
		if err != nil {
			log.Warn("Skipping recipe", zap.String("file", path), zap.Error(err))
			result.Warnings = append(result.Warnings, err.Error())
			errs = multierr.Append(errs, err)
			continue
		}

		built, issues, buildErr := BuildRecipe(recipe, log)
		result.Selectors = append(result.Selectors, built...)
		result.Issues = append(result.Issues, issues...)
		errs = multierr.Append(errs, buildErr)
	}

	// 3. Count by severity
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	log.Debug("Build finished",
		zap.Int("selectors", len(result.Selectors)),
		zap.Int("errors", result.ErrorCount),
		zap.Int("warnings", result.WarningCount))

	if config.Strict && errs != nil {
		return result, fmt.Errorf("build failed: %w", errs)
	}
	return result, nil
}

// BuildRecipe renders the selectors of a single recipe in declaration order.
// The returned error combines every error-severity issue.
func BuildRecipe(recipe *Recipe, log *zap.Logger) ([]BuiltSelector, []Issue, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		built  []BuiltSelector
		issues []Issue
		errs   error
	)
	named := make(map[string]*Builder)

	report := func(pos IssuePos, severity string, err error) {
		issues = append(issues, Issue{
			Source:   IssueSource,
			Text:     err.Error(),
			Severity: severity,
			Pos:      pos,
		})
		if severity == SeverityError {
			errs = multierr.Append(errs, fmt.Errorf("%s: %s: %w", recipe.Path, pos.Selector, err))
		}
	}

	for i, spec := range recipe.Selectors {
		pos := IssuePos{Filename: recipe.Path, Selector: spec.Name, Index: i + 1}

		if spec.Name == "" {
			report(pos, SeverityError, fmt.Errorf(IssueUnnamedSelector, i+1))
			continue
		}
		if (len(spec.Parts) > 0) == (spec.Combine != nil) {
			report(pos, SeverityError, fmt.Errorf(IssueAmbiguousSelector, spec.Name))
			continue
		}

		var (
			b   *Builder
			err error
		)
		if spec.Combine != nil {
			b, err = combineSpec(spec, named)
		} else {
			b, pos.Part, err = partsSpec(spec)
		}
		if err != nil {
			report(pos, SeverityError, err)
			continue
		}

		if _, exists := named[spec.Name]; exists {
			report(pos, SeverityWarning, fmt.Errorf(IssueDuplicateSelector, spec.Name))
		}
		named[spec.Name] = b

		built = append(built, BuiltSelector{
			File:        recipe.Path,
			Name:        spec.Name,
			Text:        b.String(),
			Specificity: b.Specificity(),
			Combined:    b.Combined(),
		})
		log.Debug("Built selector",
			zap.String("file", recipe.Path),
			zap.String("name", spec.Name),
			zap.String("selector", b.String()))
	}

	return built, issues, errs
}

// partsSpec builds a compound selector; on failure it also returns the
// 1-based number of the offending part
func partsSpec(spec SelectorSpec) (*Builder, int, error) {
	b := selector.New()
	for i, part := range spec.Parts {
		kind, err := selector.ParseKind(part.Kind)
		if err != nil {
			return nil, i + 1, err
		}
		if err := b.Add(kind, part.Value); err != nil {
			return nil, i + 1, err
		}
	}
	return b, 0, nil
}

// combineSpec joins two selectors declared earlier in the same recipe
func combineSpec(spec SelectorSpec, named map[string]*Builder) (*Builder, error) {
	c := spec.Combine
	if c.Combinator == "" {
		return nil, fmt.Errorf(IssueMissingCombinator, spec.Name)
	}

	left, ok := named[c.Left]
	if !ok {
		return nil, fmt.Errorf(IssueUnknownReference, c.Left)
	}
	right, ok := named[c.Right]
	if !ok {
		return nil, fmt.Errorf(IssueUnknownReference, c.Right)
	}

	return selector.Combine(left, c.Combinator, right), nil
}
