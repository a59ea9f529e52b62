package cssel

// Issue is a recipe entry that could not be built
type Issue struct {
	Source   string   `json:"Source"`   // "cssel"
	Text     string   `json:"Text"`     // "id \"other\": element, id and pseudo-element may appear only once"
	Severity string   `json:"Severity"` // "error", "warning"
	Pos      IssuePos `json:"Pos"`
}

// IssuePos locates an issue inside a recipe file
type IssuePos struct {
	Filename string `json:"Filename"` // "recipes/layout.yaml"
	Selector string `json:"Selector"` // "main-table"
	Index    int    `json:"Index"`    // 1-based position of the selector in the file
	Part     int    `json:"Part"`     // 1-based part number, 0 for the selector as a whole
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// IssueSource is the Source of every issue produced by Build
const IssueSource = "cssel"

// Issue message formats
const (
	IssueUnnamedSelector   = "selector #%d has no name"
	IssueAmbiguousSelector = "selector %q must declare either parts or combine"
	IssueDuplicateSelector = "selector %q is declared more than once, last one wins"
	IssueUnknownReference  = "combine references unknown selector %q"
	IssueMissingCombinator = "combine in selector %q has no combinator"
)
