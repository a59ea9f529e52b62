package cssel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintSelectorsWithSpecificity(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printSpecificity: true}

	reporter.PrintSelectors(sampleResult().Selectors)
	assert.Equal(t, "main: div#main (1,0,1)\npair: div#main + table#data (2,0,2)\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result BuildResult
		want   string
	}{
		{
			name:   "clean",
			result: BuildResult{Selectors: make([]BuiltSelector, 1)},
			want:   "\n1 selector, no issues\n",
		},
		{
			name: "with issues and load warnings",
			result: BuildResult{
				Selectors:  make([]BuiltSelector, 3),
				Issues:     make([]Issue, 1),
				ErrorCount: 1,
				Warnings:   []string{"load recipe x.yaml: boom"},
			},
			want: "\n3 selectors, 1 issue (1 error, 0 warnings)\nWarning: load recipe x.yaml: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := &Reporter{w: &buf}
			reporter.PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
}
