package testutil

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStepRan checks the text output of a simulation for a step that
// evaluated relationship and resolved head.
func AssertStepRan(t *testing.T, result *HarnessResult, relationship, head string) {
	t.Helper()

	pattern := fmt.Sprintf(`(?m)^%s: \[.*\] -> %s:`, regexp.QuoteMeta(relationship), regexp.QuoteMeta(head))
	require.Regexp(t, pattern, result.Output,
		"expected a '%s' step resolving '%s' in the trace", relationship, head)
}

// AssertStepNotRan is the negation of AssertStepRan.
func AssertStepNotRan(t *testing.T, result *HarnessResult, relationship, head string) {
	t.Helper()

	pattern := fmt.Sprintf(`(?m)^%s: \[.*\] -> %s:`, regexp.QuoteMeta(relationship), regexp.QuoteMeta(head))
	require.NotRegexp(t, pattern, result.Output,
		"did not expect a '%s' step resolving '%s' in the trace", relationship, head)
}
